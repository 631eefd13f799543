// File: internal/repository/chat/memory_store.go
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
)

// memoryChatStore is the default store: a plain map plus an insertion-order
// slice. The mutex only guards against overlapping requests from the same
// browser; the normal flow is one request at a time per session.
type memoryChatStore struct {
	mu    sync.Mutex
	chats map[string]*domain.Chat
	order []string
	ids   idGenerator
}

func NewMemoryChatStore() ChatStore {
	return &memoryChatStore{chats: make(map[string]*domain.Chat)}
}

func (s *memoryChatStore) Create(_ context.Context, chat *domain.Chat) (*domain.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.next()
	for {
		if _, taken := s.chats[id]; !taken {
			break
		}
		id = s.ids.next()
	}

	stored := cloneChat(chat)
	stored.ID = id
	s.chats[id] = stored
	s.order = append(s.order, id)

	out := cloneChat(stored)
	return out, nil
}

func (s *memoryChatStore) Get(_ context.Context, id string) (*domain.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	return cloneChat(chat), nil
}

func (s *memoryChatStore) Rename(_ context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if chat, ok := s.chats[id]; ok {
		chat.Title = title
	}
	return nil
}

func (s *memoryChatStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chats[id]; !ok {
		return nil
	}
	delete(s.chats, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memoryChatStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = make(map[string]*domain.Chat)
	s.order = nil
	return nil
}

func (s *memoryChatStore) List(_ context.Context) ([]domain.ChatSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]domain.ChatSummary, 0, len(s.order))
	for _, id := range s.order {
		summaries = append(summaries, domain.ChatSummary{ID: id, Title: s.chats[id].Title})
	}
	return summaries, nil
}

func (s *memoryChatStore) AppendMessage(_ context.Context, id string, msg domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	chat.Messages = append(chat.Messages, msg)
	return nil
}

// cloneChat keeps callers from aliasing store-owned message slices.
func cloneChat(chat *domain.Chat) *domain.Chat {
	out := *chat
	out.Messages = make([]domain.Message, len(chat.Messages))
	copy(out.Messages, chat.Messages)
	return &out
}
