package llm

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// GroqClient calls Groq's OpenAI-compatible chat completion endpoint with a
// fixed model and temperature 0. This is the default provider.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient builds a Groq client from the API key.
func NewGroqClient(apiKey string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{client: openai.NewClientWithConfig(cfg)}
}

// Complete sends the prompt as a single user message and returns the model's
// text reply.
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: groqModel,
		// go-openai drops a literal 0 from the request body, which would fall
		// back to the server default; the smallest nonzero float is the
		// closest encodable value.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: groq returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
