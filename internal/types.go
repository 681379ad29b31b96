package internal

import "time"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Mode selects which responder services a request.
type Mode string

const (
	ModeLocal       Mode = "local"
	ModeOpenAI      Mode = "openai"
	ModeHuggingFace Mode = "huggingface"
)

// ConversationHistory is a flat list of prior turns. Even indexes are user
// turns, odd indexes are assistant turns.
type ConversationHistory []string

type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type ChatHistory struct {
	Messages []Message `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
	Mode    Mode   `json:"mode,omitempty"`
}

type SendMessageResponse struct {
	Reply Message `json:"reply"`
	Mode  Mode    `json:"mode"`
}

// --- Stateless advice endpoint ---
type AdviceRequest struct {
	Message string              `json:"message"`
	History ConversationHistory `json:"history,omitempty"`
	Mode    Mode                `json:"mode,omitempty"`
}

type AdviceResponse struct {
	Reply string `json:"reply"`
	Mode  Mode   `json:"mode"`
	Topic string `json:"topic,omitempty"`
}
