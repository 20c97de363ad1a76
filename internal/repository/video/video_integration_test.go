//go:build integration

package video

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVideoRepository_Integration tests Video Repository with real PostgreSQL
func TestVideoRepository_Integration(t *testing.T) {
	// Setup real PostgreSQL using testcontainers
	pool := common.SetupTestDB(t)

	// Create repository with real connection pool
	repo := NewRepository(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Test video data
	video := &model.Video{
		ID:       "dQw4w9WgXcQ",
		Title:    "Never Gonna Give You Up",
		Channel:  "Rick Astley",
		URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Duration: 212,
	}

	t.Run("Create and GetByID", func(t *testing.T) {
		// Create video
		err := repo.Create(ctx, video)
		require.NoError(t, err)

		// Retrieve video
		retrieved, err := repo.GetByID(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, video.ID, retrieved.ID)
		assert.Equal(t, video.Title, retrieved.Title)
		assert.Equal(t, video.Channel, retrieved.Channel)
		assert.Equal(t, video.URL, retrieved.URL)
		assert.Equal(t, video.Duration, retrieved.Duration)
	})

	t.Run("Duplicate Create returns conflict", func(t *testing.T) {
		err := repo.Create(ctx, video)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Contains(t, appErr.Message, "video with this ID already exists")
	})

	t.Run("Upsert refreshes existing record", func(t *testing.T) {
		// Upsert with changed metadata
		video.Title = "Never Gonna Give You Up (Official Video)"
		video.Duration = 213
		err := repo.Upsert(ctx, video)
		require.NoError(t, err)

		// Verify the record was refreshed, not duplicated
		retrieved, err := repo.GetByID(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, "Never Gonna Give You Up (Official Video)", retrieved.Title)
		assert.Equal(t, 213.0, retrieved.Duration)
	})

	t.Run("Upsert inserts new record", func(t *testing.T) {
		newVideo := &model.Video{
			ID:       "oHg5SJYRHA0",
			Title:    "Never Gonna Let You Down",
			Channel:  "Rick Astley",
			URL:      "https://www.youtube.com/watch?v=oHg5SJYRHA0",
			Duration: 233,
		}
		err := repo.Upsert(ctx, newVideo)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, newVideo.ID)
		require.NoError(t, err)
		assert.Equal(t, newVideo.Title, retrieved.Title)
	})

	t.Run("List with pagination", func(t *testing.T) {
		videos, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, videos, 2)

		// Pagination returns the remaining video
		videos, err = repo.List(ctx, 1, 1)
		require.NoError(t, err)
		assert.Len(t, videos, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		// Delete video
		err := repo.Delete(ctx, video.ID)
		require.NoError(t, err)

		// Verify deletion
		_, err = repo.GetByID(ctx, video.ID)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}
