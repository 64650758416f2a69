package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService holds the Gemini client so we don't recreate it per request.
// The model is an opaque text collaborator: callers treat its output as
// display text and nothing downstream depends on its format.
type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client with the given API key.
func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{
		Client: llm,
	}, nil
}

const bulletPrompt = `You are a professional resume writer. Generate 3-5 achievement-focused resume bullet points based on this experience:

"%s"

Requirements:
- Start each bullet with a strong action verb (Developed, Implemented, Built, etc.)
- Include specific metrics or quantifiable results when possible
- Keep each bullet to 1-2 lines
- Focus on impact and achievements, not just responsibilities
- Use professional language

Return ONLY the bullet points in this exact format:
- First bullet here
- Second bullet here
- Third bullet here

Use a newline character between each bullet point.`

// GenerateBullets turns a free-text experience description into
// resume bullet points.
func (s *LLMService) GenerateBullets(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(bulletPrompt, description)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}
