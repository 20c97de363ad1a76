package summarizer

import (
	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
)

// Chunk is one contiguous piece of a split text
type Chunk struct {
	Index   int    // 0-based position in the chunk sequence
	Start   int    // rune offset of the chunk within the original text
	Content string
}

// SplitText splits text into chunks of at most chunkSize runes.
// Chunks come back in order and concatenating their contents
// reproduces the input exactly.
func SplitText(text string, chunkSize int) ([]Chunk, error) {
	if chunkSize < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "chunk size must be positive")
	}

	// Split on rune boundaries so multi-byte characters never break apart
	runes := []rune(text)
	if len(runes) == 0 {
		return []Chunk{}, nil
	}

	chunks := make([]Chunk, 0, (len(runes)+chunkSize-1)/chunkSize)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Index:   len(chunks),
			Start:   start,
			Content: string(runes[start:end]),
		})
	}

	return chunks, nil
}
