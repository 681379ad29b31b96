package store

import (
	"sync"
	"time"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
)

// MemoryStore keeps a single conversation transcript in memory.
type MemoryStore struct {
	mu       sync.Mutex
	messages []internal.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make([]internal.Message, 0, 64)}
}

func (s *MemoryStore) All() []internal.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]internal.Message, len(s.messages))
	copy(cp, s.messages)
	return cp
}

func (s *MemoryStore) Append(msg internal.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages = append(s.messages, msg)
}

// AppendExchange records a user message and the reply to it as one unit, so
// the transcript always alternates.
func (s *MemoryStore) AppendExchange(user, reply string) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages,
		internal.Message{Role: internal.RoleUser, Content: user, CreatedAt: now},
		internal.Message{Role: internal.RoleAssistant, Content: reply, CreatedAt: now},
	)
}

// History flattens the transcript into user/assistant pairs. Messages that
// would break the alternation (a leading assistant greeting, repeated roles)
// are skipped.
func (s *MemoryStore) History() internal.ConversationHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := make(internal.ConversationHistory, 0, len(s.messages))
	for i := 0; i+1 < len(s.messages); i++ {
		u, a := s.messages[i], s.messages[i+1]
		if u.Role == internal.RoleUser && a.Role == internal.RoleAssistant {
			h = append(h, u.Content, a.Content)
			i++
		}
	}
	return h
}

func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = s.messages[:0]
}

func SeedAssistantHello(s *MemoryStore, text string) {
	s.Append(internal.Message{
		Role:      internal.RoleAssistant,
		Content:   text,
		CreatedAt: time.Now(),
	})
}
