// File: internal/services/session_service.go
package services

import (
	"sync"
	"time"

	chatrepo "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/repository/chat"
)

// Session is one browser session's state: its own chat store plus the id of
// the chat currently being appended to. An empty ActiveChatID means the next
// submission creates a new chat.
//
// Requests within a session arrive one at a time, so Session fields need no
// lock of their own; the registry lock covers the map.
type Session struct {
	ID           string
	Store        chatrepo.ChatStore
	ActiveChatID string
	CreatedAt    time.Time
	lastSeen     time.Time
}

// StoreFactory builds the chat store backing a new session.
type StoreFactory func(sessionID string) chatrepo.ChatStore

// SessionService is the registry of live sessions. Sessions are created on
// first contact and torn down after sitting idle past the TTL.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  StoreFactory
	ttl      time.Duration
	logger   Logger
	done     chan struct{}
}

func NewSessionService(factory StoreFactory, ttl time.Duration, logger Logger) *SessionService {
	if logger == nil {
		logger = &NoOpLogger{}
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	svc := &SessionService{
		sessions: make(map[string]*Session),
		factory:  factory,
		ttl:      ttl,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go svc.sweep()
	return svc
}

// GetOrCreate returns the session for id, building it on first sight.
func (m *SessionService) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if sess, ok := m.sessions[id]; ok {
		sess.lastSeen = now
		return sess
	}

	sess := &Session{
		ID:        id,
		Store:     m.factory(id),
		CreatedAt: now,
		lastSeen:  now,
	}
	m.sessions[id] = sess
	m.logger.Info("session started", "session_id", id)
	return sess
}

// End tears down a single session immediately.
func (m *SessionService) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Info("session ended", "session_id", id)
	}
}

// Count reports live sessions. Used by the health endpoint.
func (m *SessionService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the idle sweeper.
func (m *SessionService) Close() {
	close(m.done)
}

func (m *SessionService) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.expireIdle(now)
		}
	}
}

func (m *SessionService) expireIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
			m.logger.Info("session expired", "session_id", id)
		}
	}
}
