// File: internal/services/chat/canned_test.go
package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCannedResponsesOrder(t *testing.T) {
	table := DefaultCannedResponses()
	require.Len(t, table, 5)

	triggers := make([]string, 0, len(table))
	for _, cr := range table {
		triggers = append(triggers, cr.Trigger)
	}
	assert.Equal(t, []string{"first aid", "fever", "headache", "chest pain", "covid symptoms"}, triggers)
}

func TestLookupMatchesCaseInsensitively(t *testing.T) {
	table := DefaultCannedResponses()

	reply, ok := Lookup(table, "What should I do about CHEST PAIN?")
	require.True(t, ok)
	assert.Equal(t, table[3].Reply, reply)
}

func TestLookupFirstMatchWins(t *testing.T) {
	table := DefaultCannedResponses()

	// "fever" precedes "headache" in the table, so it wins even though both
	// triggers appear in the input.
	reply, ok := Lookup(table, "I have a fever and headache")
	require.True(t, ok)
	assert.Equal(t, table[1].Reply, reply)
}

func TestLookupNoMatch(t *testing.T) {
	_, ok := Lookup(DefaultCannedResponses(), "tell me about photosynthesis")
	assert.False(t, ok)
}
