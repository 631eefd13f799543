// File: internal/repository/chat/gorm_store_test.go
package chat

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestGormStoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewGormChatStore(db, "sess-1")
	ctx := context.Background()

	created, err := store.Create(ctx, domain.NewChat())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UntitledChatTitle, got.Title)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, domain.GreetingMessage, got.Messages[0].Content)

	msg := domain.Message{Role: domain.RoleUser, Content: "hello"}
	require.NoError(t, store.AppendMessage(ctx, created.ID, msg))

	got, err = store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "hello", got.Messages[1].Content)
}

func TestGormStoreRenameDeleteClear(t *testing.T) {
	db := newTestDB(t)
	store := NewGormChatStore(db, "sess-1")
	ctx := context.Background()

	created, err := store.Create(ctx, domain.NewChat())
	require.NoError(t, err)

	require.NoError(t, store.Rename(ctx, created.ID, "Renamed"))
	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	// Permissive no-ops on unknown ids.
	assert.NoError(t, store.Rename(ctx, "999999", "whatever"))
	assert.NoError(t, store.Delete(ctx, "999999"))

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrChatNotFound)

	for i := 0; i < 2; i++ {
		_, err := store.Create(ctx, domain.NewChat())
		require.NoError(t, err)
	}
	require.NoError(t, store.Clear(ctx))
	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGormStoreSessionScoping(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := NewGormChatStore(db, "sess-a")
	b := NewGormChatStore(db, "sess-b")

	_, err := a.Create(ctx, domain.NewChat())
	require.NoError(t, err)

	aList, err := a.List(ctx)
	require.NoError(t, err)
	bList, err := b.List(ctx)
	require.NoError(t, err)

	assert.Len(t, aList, 1)
	assert.Empty(t, bList)

	// Clearing one session leaves the other untouched.
	_, err = b.Create(ctx, domain.NewChat())
	require.NoError(t, err)
	require.NoError(t, a.Clear(ctx))

	bList, err = b.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bList, 1)
}
