package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiClient is the Gemini-backed Generator used in production.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini client for the given API key and model
// name.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// GenerateText sends the prompt to the model and returns the first
// candidate's text part.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("gemini response part is not text")
	}

	logrus.WithFields(logrus.Fields{
		"model":           c.model,
		"response_length": len(text),
	}).Debug("Received model response")

	return string(text), nil
}
