package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/config"
)

const missingOpenAIKeyText = "The OpenAI API key is not configured. Set OPENAI_API_KEY to enable AI-generated answers."

const maxErrorBody = 400

type OpenAIProvider struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewOpenAIProvider(cfg config.OpenAIConfig, client *http.Client) *OpenAIProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAIProvider{cfg: cfg, client: client}
}

func (p *OpenAIProvider) Name() string  { return string(internal.ModeOpenAI) }
func (p *OpenAIProvider) Model() string { return p.cfg.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Reply posts the conversation to the chat completions endpoint. A missing API
// key is reported as reply text rather than an error.
func (p *OpenAIProvider) Reply(ctx context.Context, history internal.ConversationHistory, message string) (string, error) {
	if p.cfg.APIKey == "" {
		return missingOpenAIKeyText, nil
	}

	msgs, err := BuildMessages(history, message)
	if err != nil {
		return "", err
	}
	payload := chatRequest{
		Model:       p.cfg.Model,
		Messages:    make([]chatMessage, 0, len(msgs)),
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	}
	for _, m := range msgs {
		payload.Messages = append(payload.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal openai request: %w", err)
	}
	url := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create openai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Provider: p.Name(), Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Provider: p.Name(), Status: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil || len(out.Choices) == 0 {
		return troubleConnectingText, nil
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return troubleConnectingText, nil
	}
	return content, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
