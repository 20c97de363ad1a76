package summarizer

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
)

// Default sizes in runes, applied when Config leaves them zero
const (
	DefaultMaxChunkSize = 15000
	DefaultChunkSize    = 10000
)

// DefaultChunkPrompt is the prompt applied to each chunk of a split text
const DefaultChunkPrompt = "Summarize this portion of a video transcript. Keep all key points, facts, and names so the partial summaries can be merged later."

// DefaultConsolidationSuffix is appended to the caller's prompt for the
// final pass over the labeled chunk summaries
const DefaultConsolidationSuffix = "\n\nThe text above contains partial summaries of consecutive portions of a single video transcript. Merge them into one coherent summary without referring to the individual parts."

// Config controls how texts are split and summarized
type Config struct {
	// MaxChunkSize is the longest text, in runes, summarized in a single call
	MaxChunkSize int
	// ChunkSize is the chunk length, in runes, used when a text is split
	ChunkSize int
	// ChunkPrompt is the prompt used for each individual chunk
	ChunkPrompt string
	// ConsolidationSuffix is appended to the caller's prompt when merging
	// chunk summaries
	ConsolidationSuffix string
}

// Summarizer is interface for summarizing texts of arbitrary length
type Summarizer interface {
	// SummarizeText summarizes text using prompt, splitting texts that
	// exceed the configured maximum into chunks that are summarized
	// separately and then consolidated
	SummarizeText(ctx context.Context, text string, prompt string) (string, error)
}

// ChunkError reports the chunk that failed during chunked summarization
type ChunkError struct {
	Chunk int // 1-based index of the failing chunk
	Total int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("failed to summarize chunk %d of %d: %v", e.Chunk, e.Total, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// chunkedSummarizer implements Summarizer on top of a CompletionClient
type chunkedSummarizer struct {
	client CompletionClient
	config Config
}

// NewSummarizer creates a Summarizer that delegates completions to client.
// Zero values in cfg take the package defaults.
func NewSummarizer(client CompletionClient, cfg Config) (Summarizer, error) {
	if cfg.MaxChunkSize == 0 {
		cfg.MaxChunkSize = DefaultMaxChunkSize
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkPrompt == "" {
		cfg.ChunkPrompt = DefaultChunkPrompt
	}
	if cfg.ConsolidationSuffix == "" {
		cfg.ConsolidationSuffix = DefaultConsolidationSuffix
	}

	if cfg.MaxChunkSize < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "max chunk size must be positive")
	}
	if cfg.ChunkSize < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "chunk size must be positive")
	}

	return &chunkedSummarizer{
		client: client,
		config: cfg,
	}, nil
}

// SummarizeText summarizes text using prompt
func (s *chunkedSummarizer) SummarizeText(ctx context.Context, text string, prompt string) (string, error) {
	// Texts up to the maximum go to the backend in one call
	if len([]rune(text)) <= s.config.MaxChunkSize {
		return s.client.Complete(ctx, text, prompt)
	}
	return s.summarizeInChunks(ctx, text, prompt)
}

// summarizeInChunks summarizes each chunk in order, then consolidates
// the labeled partial summaries with a final call
func (s *chunkedSummarizer) summarizeInChunks(ctx context.Context, text string, prompt string) (string, error) {
	chunks, err := SplitText(text, s.config.ChunkSize)
	if err != nil {
		return "", err
	}

	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		result, err := s.client.Complete(ctx, chunk.Content, s.config.ChunkPrompt)
		if err != nil {
			// First failure aborts: remaining chunks are never sent
			return "", &ChunkError{Chunk: chunk.Index + 1, Total: len(chunks), Err: err}
		}
		summaries = append(summaries, fmt.Sprintf("Chunk %d: %s", chunk.Index+1, result))
	}

	joined := strings.Join(summaries, "\n\n")
	return s.client.Complete(ctx, joined, prompt+s.config.ConsolidationSuffix)
}
