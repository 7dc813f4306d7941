package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini answers with a Gemini model primed by a system prompt, as an
// alternative to a hosted Mistral agent.
type Gemini struct {
	client       *genai.Client
	model        string
	systemPrompt string
}

// NewGemini builds the backend. baseURL overrides the Gemini API endpoint when
// not empty.
func NewGemini(ctx context.Context, apiKey, model, systemPrompt, baseURL string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}, nil
}

func (g *Gemini) Converse(ctx context.Context, turns []domain.ChatMessage) ([]Output, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	var cfg *genai.GenerateContentConfig
	if g.systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(g.systemPrompt, genai.RoleUser),
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	outputs := make([]Output, 0, len(result.Candidates))
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil && !part.Thought {
				sb.WriteString(part.Text)
			}
		}
		outputs = append(outputs, Output{
			Type:    OutputTypeMessage,
			Role:    domain.ChatRoleAssistant,
			Content: sb.String(),
		})
	}

	return outputs, nil
}
