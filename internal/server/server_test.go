package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/advice"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/config"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/dispatch"
)

type stubResponder struct {
	reply   string
	err     error
	history internal.ConversationHistory
}

func (s *stubResponder) Name() string  { return "openai" }
func (s *stubResponder) Model() string { return "stub" }

func (s *stubResponder) Reply(_ context.Context, history internal.ConversationHistory, _ string) (string, error) {
	s.history = history
	return s.reply, s.err
}

func newTestServer(t *testing.T, remote *stubResponder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	d := dispatch.New(nil, remote)
	return New(config.ServerConfig{Port: "0", AllowedOrigin: "http://localhost:5173"}, d, nil).Handler()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAdvice_Local(t *testing.T) {
	h := newTestServer(t, &stubResponder{reply: "remote"})
	msg := "How do I get out of credit card debt?"
	w := postJSON(t, h, "/api/advice", internal.AdviceRequest{Message: msg})

	require.Equal(t, http.StatusOK, w.Code)
	var resp internal.AdviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, advice.Respond(msg), resp.Reply)
	assert.Equal(t, internal.ModeLocal, resp.Mode)
	assert.Equal(t, "debt", resp.Topic)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestAdvice_RemoteWithHistory(t *testing.T) {
	remote := &stubResponder{reply: "remote answer"}
	h := newTestServer(t, remote)
	w := postJSON(t, h, "/api/advice", internal.AdviceRequest{
		Message: "What next?",
		History: internal.ConversationHistory{"q1", "a1"},
		Mode:    internal.ModeOpenAI,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp internal.AdviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "remote answer", resp.Reply)
	assert.Equal(t, internal.ModeOpenAI, resp.Mode)
	assert.Equal(t, internal.ConversationHistory{"q1", "a1"}, remote.history)
}

func TestAdvice_RemoteFailureStillAnswers(t *testing.T) {
	h := newTestServer(t, &stubResponder{err: errors.New("down")})
	msg := "Should I open a roth ira?"
	w := postJSON(t, h, "/api/advice", internal.AdviceRequest{Message: msg, Mode: internal.ModeOpenAI})

	require.Equal(t, http.StatusOK, w.Code)
	var resp internal.AdviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, advice.Respond(msg), resp.Reply)
	assert.Equal(t, internal.ModeLocal, resp.Mode)
}

func TestAdvice_BadRequests(t *testing.T) {
	h := newTestServer(t, &stubResponder{})
	tests := []struct {
		name string
		body internal.AdviceRequest
	}{
		{name: "empty message", body: internal.AdviceRequest{Message: "   "}},
		{name: "unknown mode", body: internal.AdviceRequest{Message: "budget", Mode: "gemini"}},
		{name: "odd history", body: internal.AdviceRequest{Message: "budget", History: internal.ConversationHistory{"q1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h, "/api/advice", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMessages_Transcript(t *testing.T) {
	remote := &stubResponder{reply: "remote"}
	h := newTestServer(t, remote)

	w := postJSON(t, h, "/api/messages", internal.SendMessageRequest{Content: "How do I budget?", Mode: internal.ModeOpenAI})
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(t, h, "/api/messages", internal.SendMessageRequest{Content: "And savings?", Mode: internal.ModeOpenAI})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, internal.ConversationHistory{"How do I budget?", "remote"}, remote.history)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var hist internal.ChatHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Len(t, hist.Messages, 5)

	w = postJSON(t, h, "/api/reset", struct{}{})
	require.Equal(t, http.StatusOK, w.Code)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Len(t, hist.Messages, 1)
}

func TestModesAndHealth(t *testing.T) {
	h := newTestServer(t, &stubResponder{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/modes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var modes struct {
		Modes   []internal.Mode `json:"modes"`
		Default internal.Mode   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modes))
	assert.Equal(t, []internal.Mode{internal.ModeLocal, internal.ModeOpenAI}, modes.Modes)
	assert.Equal(t, internal.ModeLocal, modes.Default)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, &stubResponder{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/advice", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
