package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerativeBackend produces free-text answers from a prompt. The RAG
// service treats it as best-effort: any error falls back to the
// deterministic composer.
type GenerativeBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiBackend implements GenerativeBackend on the Google Gemini API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend builds a backend from the GEMINI_API_KEY environment
// variable. A missing key is an error so callers can decide to run
// without a backend instead of carrying a dead client.
func NewGeminiBackend(ctx context.Context) (*GeminiBackend, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	log.Printf("Gemini backend configured with model %s", model)
	return &GeminiBackend{client: client, model: model}, nil
}

// Complete sends the prompt and concatenates the text parts of the first
// candidate.
func (g *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", fmt.Errorf("gemini returned an empty answer")
	}
	return answer, nil
}

func (g *GeminiBackend) Close() error {
	return g.client.Close()
}
