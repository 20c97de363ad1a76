package summary

import (
	"testing"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	sum := &model.Summary{
		ID:        42,
		VideoID:   "dQw4w9WgXcQ",
		Language:  "en",
		Backend:   "ollama",
		Model:     "llama3.2",
		Content:   "A concise summary of the video.",
		CreatedAt: time.Now(),
	}

	output, err := formatter.Format(sum)
	require.NoError(t, err)

	assert.Contains(t, output, "Summary ID: 42")
	assert.Contains(t, output, "Video ID: dQw4w9WgXcQ")
	assert.Contains(t, output, "Language: en")
	assert.Contains(t, output, "Backend: ollama (llama3.2)")
	assert.Contains(t, output, "Content:")
	assert.Contains(t, output, "A concise summary of the video.")

	t.Run("unsaved summary omits ID", func(t *testing.T) {
		unsaved := &model.Summary{
			VideoID:  "dQw4w9WgXcQ",
			Language: "en",
			Backend:  "ollama",
			Model:    "llama3.2",
			Content:  "Not stored anywhere.",
		}

		output, err := formatter.Format(unsaved)
		require.NoError(t, err)

		assert.NotContains(t, output, "Summary ID:")
		assert.NotContains(t, output, "Created At:")
		assert.Contains(t, output, "Not stored anywhere.")
	})
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}

	sum := &model.Summary{
		ID:        42,
		VideoID:   "dQw4w9WgXcQ",
		Language:  "ja",
		Backend:   "gemini",
		Model:     "gemini-2.5-flash",
		Content:   "動画の要約",
		CreatedAt: time.Now(),
	}

	output, err := formatter.Format(sum)
	require.NoError(t, err)

	assert.Contains(t, output, `"id": 42`)
	assert.Contains(t, output, `"video_id": "dQw4w9WgXcQ"`)
	assert.Contains(t, output, `"language": "ja"`)
	assert.Contains(t, output, `"backend": "gemini"`)
	assert.Contains(t, output, `"content": "動画の要約"`)
}

func TestMarkdownFormatter(t *testing.T) {
	formatter := &MarkdownFormatter{}

	sum := &model.Summary{
		ID:        42,
		VideoID:   "dQw4w9WgXcQ",
		Language:  "en",
		Backend:   "ollama",
		Model:     "llama3.2",
		Content:   "- First point\n- Second point",
		CreatedAt: time.Now(),
	}

	output, err := formatter.Format(sum)
	require.NoError(t, err)

	assert.Contains(t, output, "# Summary of dQw4w9WgXcQ")
	assert.Contains(t, output, "- Language: en")
	assert.Contains(t, output, "- Backend: ollama (llama3.2)")
	assert.Contains(t, output, "- First point\n- Second point")
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"txt", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"TEXT", false},
		{"srt", true},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := GetFormatter(tt.format)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported format")
			} else {
				require.NoError(t, err)
				require.NotNil(t, formatter)
			}
		})
	}
}
