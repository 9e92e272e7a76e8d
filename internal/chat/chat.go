// Package chat backs the assistant endpoint with the Gemini API.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Greeting opens every new conversation.
const Greeting = "Hello! I'm your AI Stock Market Assistant. How can I help you today?"

// FallbackReply is served whenever the model call fails, so the endpoint
// degrades instead of erroring.
const FallbackReply = "I apologize, but I'm having trouble processing your request. Please try again."

var ErrEmptyMessage = errors.New("empty message")

// Responder turns a user message into an assistant reply.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// GeminiResponder calls the Gemini generateContent API.
type GeminiResponder struct {
	client *genai.Client
	model  string
}

func NewGeminiResponder(ctx context.Context, apiKey, model string) (*GeminiResponder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1beta"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiResponder{client: client, model: model}, nil
}

func (r *GeminiResponder) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: message}},
		},
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
