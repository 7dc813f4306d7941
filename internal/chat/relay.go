package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pharmacie-tassigny/site/backend/internal/agent"
	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

var (
	// ErrNoMessages is returned before any upstream call when the conversation is empty.
	ErrNoMessages = errors.New("no messages")
	// ErrUpstream wraps every failure of the conversational agent.
	ErrUpstream = errors.New("agent request failed")
)

// Relay forwards a conversation to an agent and returns a single reply.
type Relay struct {
	agent    agent.Agent
	fallback string
	// 0 forwards the whole history
	maxTurns int
}

// NewRelay builds a relay that forwards at most the maxTurns most recent turns.
func NewRelay(a agent.Agent, fallback string, maxTurns int) *Relay {
	return &Relay{
		agent:    a,
		fallback: fallback,
		maxTurns: maxTurns,
	}
}

// Reply returns the content of the first assistant message produced by the
// agent, or the fallback reply when there is none.
func (r *Relay) Reply(ctx context.Context, turns []domain.ChatMessage) (string, error) {
	if len(turns) == 0 {
		return "", ErrNoMessages
	}

	if r.maxTurns > 0 && len(turns) > r.maxTurns {
		turns = turns[len(turns)-r.maxTurns:]
	}

	outputs, err := r.agent.Converse(ctx, turns)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	for _, out := range outputs {
		if !out.IsAssistantMessage() {
			continue
		}
		if strings.TrimSpace(out.Content) == "" {
			break
		}
		return out.Content, nil
	}

	slog.Warn("agent returned no assistant message", "outputs", len(outputs))
	return r.fallback, nil
}
