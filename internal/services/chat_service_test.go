// File: internal/services/chat_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/domain"
	chatrepo "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/repository/chat"
	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/ai"
	chatservice "github.com/BetterMindLabs/AI-Medical-Chatbot/internal/services/chat"
)

// fakeProvider stands in for the Gemini client.
type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

func newTestChatService(t *testing.T, provider *fakeProvider) *ChatService {
	t.Helper()

	aiService, err := NewAIServiceWithProvider(provider, &NoOpLogger{})
	require.NoError(t, err)

	svc, err := NewChatService(aiService, nil, &NoOpLogger{})
	require.NoError(t, err)
	return svc
}

func TestSubmitCannedReplySkipsModel(t *testing.T) {
	provider := &fakeProvider{reply: "should not be used"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	id, reply, err := svc.Submit(ctx, store, "", "I think I have a fever")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, chatservice.DefaultCannedResponses()[1].Reply, reply)
	assert.Zero(t, provider.calls, "canned match must not reach the model")
}

func TestSubmitFirstTriggerWins(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()

	_, reply, err := svc.Submit(context.Background(), store, "", "I have a fever and headache")
	require.NoError(t, err)
	assert.Equal(t, chatservice.DefaultCannedResponses()[1].Reply, reply)
	assert.Zero(t, provider.calls)
}

func TestSubmitEmptyInputIsNoOp(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	_, _, err := svc.Submit(ctx, store, "", "   \t  ")
	assert.ErrorIs(t, err, chatservice.ErrEmptyMessage)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "rejected input must not create a chat")
	assert.Zero(t, provider.calls)
}

func TestSubmitAppendsBothSides(t *testing.T) {
	provider := &fakeProvider{reply: "Drink plenty of water."}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	id, reply, err := svc.Submit(ctx, store, "", "  how much water per day?  ")
	require.NoError(t, err)
	assert.Equal(t, "Drink plenty of water.", reply)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, record.Messages, 3)
	assert.Equal(t, domain.RoleAssistant, record.Messages[0].Role)
	assert.Equal(t, domain.GreetingMessage, record.Messages[0].Content)
	assert.Equal(t, domain.RoleUser, record.Messages[1].Role)
	assert.Equal(t, "how much water per day?", record.Messages[1].Content)
	assert.Equal(t, domain.RoleAssistant, record.Messages[2].Role)
	assert.Equal(t, reply, record.Messages[2].Content)
}

func TestSubmitAutoTitleTruncatesLongMessage(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	msg := "This is a very long first message exceeding thirty chars"
	id, _, err := svc.Submit(ctx, store, "", msg)
	require.NoError(t, err)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string([]rune(msg)[:domain.MaxTitleRunes])+"...", record.Title)
}

func TestSubmitAutoTitleShortMessageVerbatim(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	id, _, err := svc.Submit(ctx, store, "", "short msg")
	require.NoError(t, err)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "short msg", record.Title)
}

func TestSubmitSecondMessageKeepsTitle(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	id, _, err := svc.Submit(ctx, store, "", "first question")
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, store, id, "a totally different follow-up")
	require.NoError(t, err)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first question", record.Title)
}

func TestSubmitModelErrorBecomesReply(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	id, reply, err := svc.Submit(ctx, store, "", "unusual question")
	require.NoError(t, err, "model failures must not fail the submission")
	assert.Contains(t, reply, "Error occurred:")
	assert.Contains(t, reply, "quota exceeded")

	// The user message is retained; the conversation is not rolled back.
	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, record.Messages, 3)
	assert.Equal(t, "unusual question", record.Messages[1].Content)
	assert.Equal(t, reply, record.Messages[2].Content)
}

func TestSubmitEmptyCompletionBecomesFallback(t *testing.T) {
	provider := &fakeProvider{err: ai.NewProviderError("completion", "empty completion response", ai.ErrEmptyCompletion)}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()

	_, reply, err := svc.Submit(context.Background(), store, "", "unusual question")
	require.NoError(t, err)
	assert.Equal(t, chatservice.FallbackReply, reply)
}

func TestSubmitAfterDeleteCreatesFreshChat(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	first, _, err := svc.Submit(ctx, store, "", "hello")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteChat(ctx, store, first))

	second, _, err := svc.Submit(ctx, store, "", "hello again")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSubmitAfterClearBehavesLikeFirstContact(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(t, provider)
	store := chatrepo.NewMemoryChatStore()
	ctx := context.Background()

	_, _, err := svc.Submit(ctx, store, "", "hello")
	require.NoError(t, err)
	require.NoError(t, svc.ClearChats(ctx, store))

	list, err := svc.ListChats(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, list)

	id, _, err := svc.Submit(ctx, store, "", "starting over")
	require.NoError(t, err)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, record.Messages, 3)
	assert.Equal(t, domain.GreetingMessage, record.Messages[0].Content)
}
