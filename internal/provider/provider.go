package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/advice"
)

// Responder produces an advisory reply for message given the prior turns.
type Responder interface {
	Name() string
	Model() string
	Reply(ctx context.Context, history internal.ConversationHistory, message string) (string, error)
}

// Fixed user-facing texts shared by the remote responders.
const (
	troubleConnectingText = "I'm having trouble connecting to my knowledge source right now. Please try again in a moment."
	warmingUpText         = "The AI model is still warming up. Please try again shortly."
)

// ErrMalformedHistory is returned when a history cannot be paired into
// alternating user/assistant turns.
var ErrMalformedHistory = errors.New("malformed conversation history")

// Error is returned when a remote provider cannot be reached or answers with
// a non-2xx status. Status is 0 for transport failures.
type Error struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s request failed: status=%d body=%s", e.Provider, e.Status, e.Body)
}

func (e *Error) Unwrap() error { return e.Err }

// LocalProvider answers from the built-in advice table without any external API.
type LocalProvider struct{}

func (LocalProvider) Name() string  { return string(internal.ModeLocal) }
func (LocalProvider) Model() string { return "financeguru-local" }

func (LocalProvider) Reply(_ context.Context, _ internal.ConversationHistory, message string) (string, error) {
	return advice.Respond(message), nil
}
