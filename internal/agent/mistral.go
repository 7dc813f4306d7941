package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

const defaultMistralBaseURL = "https://api.mistral.ai"

// Mistral talks to a Mistral agent through the conversations API.
type Mistral struct {
	apiKey     string
	agentID    string
	baseURL    string
	httpClient *http.Client
}

func NewMistral(apiKey, agentID, baseURL string, timeout time.Duration) (*Mistral, error) {
	if apiKey == "" {
		return nil, errors.New("mistral api key is required")
	}
	if agentID == "" {
		return nil, errors.New("mistral agent id is required")
	}
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}

	return &Mistral{
		apiKey:  apiKey,
		agentID: agentID,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type conversationInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conversationRequest struct {
	AgentID string              `json:"agent_id"`
	Inputs  []conversationInput `json:"inputs"`
}

type conversationOutput struct {
	Type    string         `json:"type"`
	Role    string         `json:"role"`
	Content messageContent `json:"content"`
}

type conversationResponse struct {
	ConversationID string               `json:"conversation_id"`
	Outputs        []conversationOutput `json:"outputs"`
}

// messageContent accepts either a plain string or a list of chunks, keeping
// the text chunks only.
type messageContent string

type contentChunk struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (c *messageContent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = messageContent(s)
		return nil
	}

	var chunks []contentChunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return fmt.Errorf("unexpected message content: %w", err)
	}

	var sb strings.Builder
	for _, chunk := range chunks {
		if chunk.Type == "text" {
			sb.WriteString(chunk.Text)
		}
	}
	*c = messageContent(sb.String())
	return nil
}

func (m *Mistral) Converse(ctx context.Context, turns []domain.ChatMessage) ([]Output, error) {
	payload := conversationRequest{
		AgentID: m.agentID,
		Inputs:  make([]conversationInput, 0, len(turns)),
	}
	for _, turn := range turns {
		payload.Inputs = append(payload.Inputs, conversationInput{Role: turn.Role, Content: turn.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v1/conversations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mistral request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("mistral request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var envelope conversationResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode mistral response: %w", err)
	}

	outputs := make([]Output, 0, len(envelope.Outputs))
	for _, out := range envelope.Outputs {
		outputs = append(outputs, Output{
			Type:    out.Type,
			Role:    out.Role,
			Content: string(out.Content),
		})
	}

	return outputs, nil
}
