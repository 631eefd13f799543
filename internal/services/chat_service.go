// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
	chatrepo "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/repository/chat"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/ai"
	chatservice "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/chat"
)

// ChatService routes one submitted user message into a stored exchange:
// canned-table lookup first, the model otherwise, both sides appended to the
// active chat. It is stateless; the per-session store is passed in.
type ChatService struct {
	config *chatservice.Config
	ai     *AIService
	canned []chatservice.CannedResponse
	logger Logger
}

func NewChatService(aiService *AIService, config *chatservice.Config, logger Logger) (*ChatService, error) {
	if aiService == nil {
		return nil, chatservice.NewValidationError("constructor", "AI service is required")
	}
	if config == nil {
		config = chatservice.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, chatservice.NewValidationError("config", err.Error())
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &ChatService{
		config: config,
		ai:     aiService,
		canned: chatservice.DefaultCannedResponses(),
		logger: logger,
	}, nil
}

// Submit turns rawText into a persisted exchange and returns the id of the
// chat written to plus the assistant reply. An empty activeID means "no
// active chat": one is created first, greeting included.
//
// Model failures never surface as errors; they become the assistant reply so
// the conversation keeps going.
func (s *ChatService) Submit(ctx context.Context, store chatrepo.ChatStore, activeID, rawText string) (string, string, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return activeID, "", chatservice.ErrEmptyMessage
	}

	id := activeID
	if id == "" {
		created, err := store.Create(ctx, domain.NewChat())
		if err != nil {
			return "", "", chatservice.NewStoreError("submit", "could not create chat", err)
		}
		id = created.ID
		s.logger.Info("chat created", "chat_id", id)
	}

	userMsg := domain.Message{Role: domain.RoleUser, Content: text, CreatedAt: time.Now()}
	if err := store.AppendMessage(ctx, id, userMsg); err != nil {
		return "", "", chatservice.NewStoreError("submit", "could not record user message", err)
	}

	s.maybeAutoTitle(ctx, store, id, text)

	reply := s.resolveReply(ctx, text)

	assistantMsg := domain.Message{Role: domain.RoleAssistant, Content: reply, CreatedAt: time.Now()}
	if err := store.AppendMessage(ctx, id, assistantMsg); err != nil {
		return "", "", chatservice.NewStoreError("submit", "could not record assistant reply", err)
	}

	return id, reply, nil
}

// maybeAutoTitle names the chat after its first user message: at that point
// the history is exactly the greeting plus that message, and the title is
// still the placeholder. Best effort; a failed lookup just skips the rename.
func (s *ChatService) maybeAutoTitle(ctx context.Context, store chatrepo.ChatStore, id, text string) {
	record, err := store.Get(ctx, id)
	if err != nil {
		return
	}
	if record.Title != domain.UntitledChatTitle || len(record.Messages) != 2 {
		return
	}

	title := text
	if runes := []rune(text); len(runes) > s.config.TitleMaxRunes {
		title = string(runes[:s.config.TitleMaxRunes]) + "..."
	}
	if err := store.Rename(ctx, id, title); err != nil {
		s.logger.Warn("auto-title failed", "chat_id", id, "error", err.Error())
	}
}

// resolveReply picks the canned answer when a trigger matches, otherwise
// makes one bounded model call.
func (s *ChatService) resolveReply(ctx context.Context, text string) string {
	if reply, ok := chatservice.Lookup(s.canned, text); ok {
		s.logger.Debug("canned reply matched")
		return reply
	}

	callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	reply, err := s.ai.GetCompletion(callCtx, text)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyCompletion) {
			return chatservice.FallbackReply
		}
		s.logger.Warn("model call failed", "error", err.Error())
		return fmt.Sprintf("Error occurred: %v", err)
	}
	return strings.TrimSpace(reply)
}

// --- History operations, exposed to the UI layer ---

func (s *ChatService) ListChats(ctx context.Context, store chatrepo.ChatStore) ([]domain.ChatSummary, error) {
	return store.List(ctx)
}

func (s *ChatService) GetChat(ctx context.Context, store chatrepo.ChatStore, id string) (*domain.Chat, error) {
	return store.Get(ctx, id)
}

func (s *ChatService) RenameChat(ctx context.Context, store chatrepo.ChatStore, id, title string) error {
	return store.Rename(ctx, id, title)
}

func (s *ChatService) DeleteChat(ctx context.Context, store chatrepo.ChatStore, id string) error {
	return store.Delete(ctx, id)
}

func (s *ChatService) ClearChats(ctx context.Context, store chatrepo.ChatStore) error {
	return store.Clear(ctx)
}
