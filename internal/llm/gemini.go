package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClient is the alternative provider, selected with LLM_PROVIDER=gemini.
// Credentials come from the environment (GEMINI_API_KEY or application
// default credentials, resolved by the SDK).
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient builds a Gemini client.
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Complete sends the prompt and returns the model's text reply.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("llm: gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("llm: gemini returned empty response")
	}
	return text, nil
}
