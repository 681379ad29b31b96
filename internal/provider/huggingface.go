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

// HuggingFaceProvider calls a hosted text generation model with a single
// flattened prompt. A token is optional.
type HuggingFaceProvider struct {
	cfg    config.HuggingFaceConfig
	client *http.Client
}

func NewHuggingFaceProvider(cfg config.HuggingFaceConfig, client *http.Client) *HuggingFaceProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HuggingFaceProvider{cfg: cfg, client: client}
}

func (p *HuggingFaceProvider) Name() string  { return string(internal.ModeHuggingFace) }
func (p *HuggingFaceProvider) Model() string { return p.cfg.Model }

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

type shapeMatcher func(body []byte) (string, bool)

// first shape yielding text wins
var generationShapes = []shapeMatcher{
	func(body []byte) (string, bool) {
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return "", false
		}
		return s, s != ""
	},
	func(body []byte) (string, bool) {
		var gens []generation
		if err := json.Unmarshal(body, &gens); err != nil {
			return "", false
		}
		for _, g := range gens {
			if g.GeneratedText != "" {
				return g.GeneratedText, true
			}
		}
		return "", false
	},
	func(body []byte) (string, bool) {
		var g generation
		if err := json.Unmarshal(body, &g); err != nil {
			return "", false
		}
		return g.GeneratedText, g.GeneratedText != ""
	},
}

func extractGeneratedText(body []byte) (string, bool) {
	for _, match := range generationShapes {
		if text, ok := match(body); ok {
			return text, true
		}
	}
	return "", false
}

func isWarmingUp(status int, body []byte) bool {
	if status != http.StatusServiceUnavailable {
		return false
	}
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(e.Error), "loading")
}

// Reply sends the flattened conversation and returns the generated
// continuation with any leaked follow-up turns removed.
func (p *HuggingFaceProvider) Reply(ctx context.Context, history internal.ConversationHistory, message string) (string, error) {
	msgs, err := BuildMessages(history, message)
	if err != nil {
		return "", err
	}
	payload := generationRequest{
		Inputs: FlattenPrompt(msgs),
		Parameters: generationParameters{
			MaxNewTokens:   p.cfg.MaxNewTokens,
			Temperature:    p.cfg.Temperature,
			TopP:           p.cfg.TopP,
			DoSample:       true,
			ReturnFullText: false,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal huggingface request: %w", err)
	}

	url := strings.TrimRight(p.cfg.BaseURL, "/") + "/" + p.cfg.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create huggingface request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Provider: p.Name(), Status: resp.StatusCode, Err: err}
	}
	if isWarmingUp(resp.StatusCode, body) {
		return warmingUpText, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Provider: p.Name(), Status: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	text, ok := extractGeneratedText(body)
	if !ok {
		return troubleConnectingText, nil
	}
	if text = trimLeakedTurns(text); text == "" {
		return troubleConnectingText, nil
	}
	return text, nil
}
