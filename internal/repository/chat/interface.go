// File: internal/repository/chat/interface.go
package chat

import (
	"context"
	"errors"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
)

var ErrChatNotFound = errors.New("chat not found")

// ChatStore holds one session's conversations. Each browser session owns its
// own instance; nothing here survives a process restart.
//
// Rename and Delete on an absent id are deliberate no-ops, matching the
// permissive behavior of the history view. Get is the strict accessor and
// returns ErrChatNotFound.
type ChatStore interface {
	// Create inserts the chat, assigns a fresh id and returns the stored
	// record. The returned id is guaranteed absent from the store
	// immediately before the call.
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	Get(ctx context.Context, id string) (*domain.Chat, error)
	// Rename replaces the title. Whitespace-only titles are ignored.
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	// List returns an insertion-ordered snapshot for the history view.
	List(ctx context.Context) ([]domain.ChatSummary, error)
	AppendMessage(ctx context.Context, id string, msg domain.Message) error
}
