// File: internal/repository/chat/gorm_store.go
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
)

// chatRow and messageRow are the persistence shapes. Chat ids repeat across
// sessions (unix-second tokens), so rows get their own surrogate key and the
// (session_id, chat_id) pair identifies a chat.
type chatRow struct {
	ID        uint   `gorm:"primarykey"`
	SessionID string `gorm:"index;not null"`
	ChatID    string `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	CreatedAt time.Time
}

func (chatRow) TableName() string { return "chats" }

type messageRow struct {
	ID        uint   `gorm:"primarykey"`
	ChatRowID uint   `gorm:"index;not null"`
	Role      string `gorm:"not null"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
}

func (messageRow) TableName() string { return "messages" }

// AutoMigrate creates the chat tables. Intended for the in-memory SQLite
// backend, which starts empty on every boot.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&chatRow{}, &messageRow{})
}

// gormChatStore is a session-scoped view over a shared in-memory SQLite
// database. Functionally identical to the map store; it exists for
// deployments that want SQL visibility into live session state.
type gormChatStore struct {
	db        *gorm.DB
	sessionID string
	ids       idGenerator
}

func NewGormChatStore(db *gorm.DB, sessionID string) ChatStore {
	return &gormChatStore{db: db, sessionID: sessionID}
}

func (s *gormChatStore) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	id := s.ids.next()
	for {
		taken, err := s.exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		id = s.ids.next()
	}

	row := chatRow{SessionID: s.sessionID, ChatID: id, Title: chat.Title, CreatedAt: time.Now()}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, msg := range chat.Messages {
			mr := messageRow{ChatRowID: row.ID, Role: msg.Role, Content: msg.Content, CreatedAt: msg.CreatedAt}
			if err := tx.Create(&mr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored := cloneChat(chat)
	stored.ID = id
	stored.CreatedAt = row.CreatedAt
	return stored, nil
}

func (s *gormChatStore) Get(ctx context.Context, id string) (*domain.Chat, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	var msgRows []messageRow
	if err := s.db.WithContext(ctx).
		Where("chat_row_id = ?", row.ID).
		Order("id ASC").
		Find(&msgRows).Error; err != nil {
		return nil, err
	}

	chat := &domain.Chat{ID: row.ChatID, Title: row.Title, CreatedAt: row.CreatedAt}
	for _, mr := range msgRows {
		chat.Messages = append(chat.Messages, domain.Message{Role: mr.Role, Content: mr.Content, CreatedAt: mr.CreatedAt})
	}
	return chat, nil
}

func (s *gormChatStore) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	// Zero rows affected means the id is gone; that is fine here.
	return s.db.WithContext(ctx).
		Model(&chatRow{}).
		Where("session_id = ? AND chat_id = ?", s.sessionID, id).
		Update("title", title).Error
}

func (s *gormChatStore) Delete(ctx context.Context, id string) error {
	row, err := s.find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			return nil
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_row_id = ?", row.ID).Delete(&messageRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chatRow{}, row.ID).Error
	})
}

func (s *gormChatStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rowIDs []uint
		if err := tx.Model(&chatRow{}).
			Where("session_id = ?", s.sessionID).
			Pluck("id", &rowIDs).Error; err != nil {
			return err
		}
		if len(rowIDs) == 0 {
			return nil
		}
		if err := tx.Where("chat_row_id IN ?", rowIDs).Delete(&messageRow{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", s.sessionID).Delete(&chatRow{}).Error
	})
}

func (s *gormChatStore) List(ctx context.Context) ([]domain.ChatSummary, error) {
	var rows []chatRow
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", s.sessionID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.ChatSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.ChatSummary{ID: row.ChatID, Title: row.Title})
	}
	return summaries, nil
}

func (s *gormChatStore) AppendMessage(ctx context.Context, id string, msg domain.Message) error {
	row, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	mr := messageRow{ChatRowID: row.ID, Role: msg.Role, Content: msg.Content, CreatedAt: msg.CreatedAt}
	return s.db.WithContext(ctx).Create(&mr).Error
}

func (s *gormChatStore) find(ctx context.Context, id string) (*chatRow, error) {
	var row chatRow
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND chat_id = ?", s.sessionID, id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *gormChatStore) exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&chatRow{}).
		Where("session_id = ? AND chat_id = ?", s.sessionID, id).
		Count(&count).Error
	return count > 0, err
}
