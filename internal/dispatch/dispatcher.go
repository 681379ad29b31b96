// Package dispatch picks the responder for each request and falls back to the
// local advice table whenever a remote responder fails.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/advice"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/provider"
)

var shortGreeting = regexp.MustCompile(`(?i)^(hi|hello|hey|greetings|howdy|good (morning|afternoon|evening))([\s[:punct:]]|$)`)

// IsShortGreeting reports whether message is answered locally regardless of mode.
func IsShortGreeting(message string) bool {
	return shortGreeting.MatchString(strings.TrimSpace(message))
}

type Result struct {
	Text   string
	Source internal.Mode
	Topic  string
}

type Dispatcher struct {
	remotes map[internal.Mode]provider.Responder
	log     *logrus.Logger
}

// New registers each remote responder under its Name. A nil logger discards output.
func New(log *logrus.Logger, remotes ...provider.Responder) *Dispatcher {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	d := &Dispatcher{remotes: make(map[internal.Mode]provider.Responder, len(remotes)), log: log}
	for _, r := range remotes {
		d.remotes[internal.Mode(r.Name())] = r
	}
	return d
}

func (d *Dispatcher) Modes() []internal.Mode {
	modes := make([]internal.Mode, 0, len(d.remotes)+1)
	for m := range d.remotes {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return append([]internal.Mode{internal.ModeLocal}, modes...)
}

// Supports reports whether mode can be dispatched. The empty mode means local.
func (d *Dispatcher) Supports(mode internal.Mode) bool {
	if mode == "" || mode == internal.ModeLocal {
		return true
	}
	_, ok := d.remotes[mode]
	return ok
}

// GenerateResponse returns advice for message. It never fails: remote errors
// are logged and answered from the local table instead.
func (d *Dispatcher) GenerateResponse(ctx context.Context, message string, history internal.ConversationHistory, mode internal.Mode) string {
	return d.Dispatch(ctx, message, history, mode).Text
}

// Dispatch is GenerateResponse reporting which responder answered.
func (d *Dispatcher) Dispatch(ctx context.Context, message string, history internal.ConversationHistory, mode internal.Mode) Result {
	if mode == "" || mode == internal.ModeLocal || IsShortGreeting(message) {
		return local(message)
	}

	entry := d.log.WithField("mode", mode)
	remote, ok := d.remotes[mode]
	if !ok {
		entry.Warn("unknown response mode, answering locally")
		return local(message)
	}

	text, err := remote.Reply(ctx, history, message)
	if err != nil {
		entry = entry.WithField("provider", remote.Name()).WithError(err)
		var perr *provider.Error
		if errors.As(err, &perr) {
			entry = entry.WithField("status", perr.Status)
		}
		entry.Warn("remote responder failed, answering locally")
		return local(message)
	}
	entry.WithField("model", remote.Model()).Debug("remote responder answered")
	return Result{Text: text, Source: mode}
}

func local(message string) Result {
	return Result{Text: advice.Respond(message), Source: internal.ModeLocal, Topic: advice.Topic(message)}
}

func (d *Dispatcher) ParseMode(s string) (internal.Mode, error) {
	mode := internal.Mode(s)
	if !d.Supports(mode) {
		return "", fmt.Errorf("unknown mode %q, want one of %v", s, d.Modes())
	}
	if mode == "" {
		return internal.ModeLocal, nil
	}
	return mode, nil
}
