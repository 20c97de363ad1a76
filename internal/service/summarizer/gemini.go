package summarizer

import (
	"context"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"google.golang.org/genai"
)

// geminiClient generates completions with the Gemini API
type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a CompletionClient backed by the Gemini API
func NewGeminiClient(ctx context.Context, apiKey string, model string) (CompletionClient, error) {
	if apiKey == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "gemini API key is required (set GEMINI_API_KEY or summary.gemini_api_key in config)")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to create gemini client")
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// Complete sends the prompt and text to the Gemini API and returns the generated output
func (c *geminiClient) Complete(ctx context.Context, text string, prompt string) (string, error) {
	if text == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "text is required")
	}

	combined := prompt + "\n\n" + text
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(combined), nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternal, "failed to generate content with gemini")
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", apperrors.New(apperrors.CodeExternal, "empty response from gemini")
	}

	var output string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			output += part.Text
		}
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", apperrors.New(apperrors.CodeExternal, "empty response from gemini")
	}

	return output, nil
}
