// File: internal/domain/chat.go
package domain

import "time"

const (
	// UntitledChatTitle is the placeholder title a chat carries until the
	// first user message names it (or the user renames it by hand).
	UntitledChatTitle = "Unnamed Chat"

	// GreetingMessage opens every new conversation.
	GreetingMessage = "Hello! How can I assist you with medical or health-related questions today?"

	// MaxTitleRunes caps auto-generated titles; longer first messages are
	// truncated and suffixed with an ellipsis.
	MaxTitleRunes = 30
)

// Chat represents a single conversation thread: a title plus its ordered
// message history. Message order is conversation order.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatSummary is the listing shape for the history view.
type ChatSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewChat builds an untitled chat seeded with the assistant greeting. The
// store assigns the ID on insert.
func NewChat() *Chat {
	return &Chat{
		Title: UntitledChatTitle,
		Messages: []Message{
			{Role: RoleAssistant, Content: GreetingMessage, CreatedAt: time.Now()},
		},
	}
}
