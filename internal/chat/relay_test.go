package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pharmacie-tassigny/site/backend/internal/agent"
	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fallback = "Je n'ai pas pu générer de réponse."

type fakeAgent struct {
	outputs []agent.Output
	err     error
	calls   int
	turns   []domain.ChatMessage
}

func (f *fakeAgent) Converse(_ context.Context, turns []domain.ChatMessage) ([]agent.Output, error) {
	f.calls++
	f.turns = turns
	return f.outputs, f.err
}

var hello = []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "Bonjour"}}

func TestReply_EmptyConversation(t *testing.T) {
	fake := &fakeAgent{}
	relay := NewRelay(fake, fallback, 0)

	_, err := relay.Reply(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoMessages)

	_, err = relay.Reply(context.Background(), []domain.ChatMessage{})
	assert.ErrorIs(t, err, ErrNoMessages)

	assert.Zero(t, fake.calls)
}

func TestReply_AssistantMessage(t *testing.T) {
	fake := &fakeAgent{outputs: []agent.Output{
		{Type: "tool.execution"},
		{Type: agent.OutputTypeMessage, Role: "assistant", Content: "Bonjour ! Comment puis-je vous aider ?"},
		{Type: agent.OutputTypeMessage, Role: "assistant", Content: "second"},
	}}

	reply, err := NewRelay(fake, fallback, 0).Reply(context.Background(), hello)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour ! Comment puis-je vous aider ?", reply)
	assert.Equal(t, hello, fake.turns)
	assert.Equal(t, 1, fake.calls)
}

func TestReply_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		outputs []agent.Output
	}{
		{"no outputs", nil},
		{"only tool calls", []agent.Output{{Type: "function.call", Role: "assistant"}}},
		{"user echo", []agent.Output{{Type: agent.OutputTypeMessage, Role: "user", Content: "Bonjour"}}},
		{"empty content", []agent.Output{{Type: agent.OutputTypeMessage, Role: "assistant", Content: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := NewRelay(&fakeAgent{outputs: tt.outputs}, fallback, 0).Reply(context.Background(), hello)
			require.NoError(t, err)
			assert.Equal(t, fallback, reply)
		})
	}
}

func TestReply_UpstreamFailure(t *testing.T) {
	cause := errors.New("mistral request failed with status 503")
	fake := &fakeAgent{err: cause}

	_, err := NewRelay(fake, fallback, 0).Reply(context.Background(), hello)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, fake.calls)
}

func TestReply_KeepsRecentTurns(t *testing.T) {
	var conversation []domain.ChatMessage
	for i := range 7 {
		role := domain.ChatRoleUser
		if i%2 == 0 {
			role = domain.ChatRoleAssistant
		}
		conversation = append(conversation, domain.ChatMessage{Role: role, Content: fmt.Sprintf("tour %d", i)})
	}
	fake := &fakeAgent{outputs: []agent.Output{{Type: agent.OutputTypeMessage, Role: "assistant", Content: "ok"}}}

	_, err := NewRelay(fake, fallback, 3).Reply(context.Background(), conversation)
	require.NoError(t, err)
	assert.Equal(t, conversation[4:], fake.turns)

	_, err = NewRelay(fake, fallback, 0).Reply(context.Background(), conversation)
	require.NoError(t, err)
	assert.Equal(t, conversation, fake.turns)

	_, err = NewRelay(fake, fallback, 10).Reply(context.Background(), conversation)
	require.NoError(t, err)
	assert.Equal(t, conversation, fake.turns)
}
