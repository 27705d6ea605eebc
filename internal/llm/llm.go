// Package llm generates exam packages through an OpenAI-compatible chat
// completion API. The default deployment points it at Gemini's compatibility
// endpoint, but any provider that honors JSON response mode works.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/minhdangit/detinai/internal/model"
)

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a new LLM client. baseURL may be empty to use the provider's
// default endpoint.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// GenerateExam asks the model for a complete exam package and returns the
// decoded JSON as-is. The payload is untrusted at this point; callers run it
// through the sanitizer before use.
func (c *Client) GenerateExam(ctx context.Context, params model.GenerationParams) (any, error) {
	userParts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: buildUserPrompt(params)},
	}
	for _, img := range params.Images {
		userParts = append(userParts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", img.MIMEType, img.Data),
			},
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, MultiContent: userParts},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	slog.Debug("LLM response", "bytes", len(raw))

	// UseNumber keeps numeric values as their JSON text, so downstream
	// stringification never rounds a large id or score.
	dec := json.NewDecoder(strings.NewReader(stripCodeFences(raw)))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}
	return payload, nil
}

// stripCodeFences removes a surrounding markdown code fence. Some providers
// wrap JSON output in ```json blocks even when JSON mode is requested.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
