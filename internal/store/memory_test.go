package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
)

func TestMemoryStore_HistorySkipsSeed(t *testing.T) {
	s := NewMemoryStore()
	SeedAssistantHello(s, "Hi, I'm FinanceGuru")
	s.AppendExchange("q1", "a1")
	s.AppendExchange("q2", "a2")

	assert.Len(t, s.All(), 5)
	assert.Equal(t, internal.ConversationHistory{"q1", "a1", "q2", "a2"}, s.History())
}

func TestMemoryStore_HistorySkipsUnpairedTurns(t *testing.T) {
	s := NewMemoryStore()
	s.Append(internal.Message{Role: internal.RoleUser, Content: "lost"})
	s.AppendExchange("q1", "a1")
	s.Append(internal.Message{Role: internal.RoleUser, Content: "pending"})

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, internal.ConversationHistory{"q1", "a1"}, h)
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.AppendExchange("q", "a")
	msgs := s.All()
	msgs[0].Content = "changed"
	assert.Equal(t, "q", s.All()[0].Content)
	assert.False(t, s.All()[0].CreatedAt.IsZero())
}

func TestMemoryStore_Reset(t *testing.T) {
	s := NewMemoryStore()
	s.AppendExchange("q", "a")
	s.Reset()
	assert.Empty(t, s.All())
	assert.Empty(t, s.History())
}
