package summarizer

import "context"

// CompletionClient is interface for generating text completions with an AI backend
type CompletionClient interface {
	// Complete applies prompt to text and returns the generated output
	Complete(ctx context.Context, text string, prompt string) (string, error)
}
