package summarizer

import (
	"context"
	"testing"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		got, err := NewGeminiClient(context.Background(), "", "gemini-2.5-flash")

		require.Error(t, err)
		assert.Nil(t, got)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidArg, appErr.Code)
		assert.Contains(t, appErr.Message, "GEMINI_API_KEY")
	})

	t.Run("valid API key", func(t *testing.T) {
		got, err := NewGeminiClient(context.Background(), "test-api-key", "gemini-2.5-flash")

		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
