//go:build integration

package summary

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/common"
	"github.com/Taichi-iskw/yt-brief/internal/repository/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummaryRepository_Integration tests Summary Repository with real PostgreSQL
func TestSummaryRepository_Integration(t *testing.T) {
	// Setup real PostgreSQL using testcontainers
	pool := common.SetupTestDB(t)

	repo := NewRepository(pool)
	videoRepo := video.NewRepository(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Summaries require an existing video
	testVideo := &model.Video{
		ID:       "dQw4w9WgXcQ",
		Title:    "Never Gonna Give You Up",
		Channel:  "Rick Astley",
		URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Duration: 212,
	}
	err := videoRepo.Create(ctx, testVideo)
	require.NoError(t, err)

	summary := &model.Summary{
		VideoID:  testVideo.ID,
		Language: "en",
		Backend:  "ollama",
		Model:    "llama3.2",
		Content:  "A man promises to never give you up.",
	}

	t.Run("Create and GetByID", func(t *testing.T) {
		err := repo.Create(ctx, summary)
		require.NoError(t, err)
		assert.NotZero(t, summary.ID)
		assert.False(t, summary.CreatedAt.IsZero())

		retrieved, err := repo.GetByID(ctx, summary.ID)
		require.NoError(t, err)
		assert.Equal(t, summary.VideoID, retrieved.VideoID)
		assert.Equal(t, summary.Language, retrieved.Language)
		assert.Equal(t, summary.Backend, retrieved.Backend)
		assert.Equal(t, summary.Model, retrieved.Model)
		assert.Equal(t, summary.Content, retrieved.Content)
	})

	t.Run("Duplicate summary returns conflict", func(t *testing.T) {
		duplicate := &model.Summary{
			VideoID:  testVideo.ID,
			Language: "en",
			Backend:  "ollama",
			Model:    "llama3.2",
			Content:  "A different rendition of the same summary.",
		}

		err := repo.Create(ctx, duplicate)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Contains(t, appErr.Message, "summary for this video, language, and model already exists")
	})

	t.Run("Summary for unknown video returns dependency error", func(t *testing.T) {
		orphan := &model.Summary{
			VideoID:  "UNKNOWN_VIDEO",
			Language: "en",
			Backend:  "ollama",
			Model:    "llama3.2",
			Content:  "Summary of a video that does not exist.",
		}

		err := repo.Create(ctx, orphan)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeDependency, appErr.Code)
		assert.Contains(t, appErr.Message, "referenced video does not exist")
	})

	t.Run("GetByVideoIDAndModel", func(t *testing.T) {
		retrieved, err := repo.GetByVideoIDAndModel(ctx, testVideo.ID, "en", "ollama", "llama3.2")
		require.NoError(t, err)
		assert.Equal(t, summary.ID, retrieved.ID)

		// Different model has no summary yet
		_, err = repo.GetByVideoIDAndModel(ctx, testVideo.ID, "en", "gemini", "gemini-2.5-flash")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})

	t.Run("GetByVideoID and List", func(t *testing.T) {
		// Second summary for the same video with a different backend
		second := &model.Summary{
			VideoID:  testVideo.ID,
			Language: "en",
			Backend:  "gemini",
			Model:    "gemini-2.5-flash",
			Content:  "A concise rendition from another backend.",
		}
		err := repo.Create(ctx, second)
		require.NoError(t, err)

		byVideo, err := repo.GetByVideoID(ctx, testVideo.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, byVideo, 2)

		all, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Deleting video cascades to summaries", func(t *testing.T) {
		err := videoRepo.Delete(ctx, testVideo.ID)
		require.NoError(t, err)

		summaries, err := repo.GetByVideoID(ctx, testVideo.ID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
