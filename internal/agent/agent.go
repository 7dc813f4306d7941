package agent

import (
	"context"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

// Output types an agent may return for a generated message.
const (
	OutputTypeMessage       = "message.output"
	OutputTypeMessageLegacy = "message"
)

// Output is one entry of an agent response. Tool calls and other non-message
// entries keep their type and carry no content.
type Output struct {
	Type    string
	Role    string
	Content string
}

func (o Output) IsAssistantMessage() bool {
	return (o.Type == OutputTypeMessage || o.Type == OutputTypeMessageLegacy) && o.Role == domain.ChatRoleAssistant
}

// Agent is a hosted conversational agent. Converse starts a new conversation
// from the given turns; no state is kept between calls.
type Agent interface {
	Converse(ctx context.Context, turns []domain.ChatMessage) ([]Output, error)
}
