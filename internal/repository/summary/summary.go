package summary

import (
	"context"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// Repository defines operations for Summary persistence
type Repository interface {
	// Create creates a new summary record and fills in its generated ID
	Create(ctx context.Context, summary *model.Summary) error

	// GetByID retrieves a summary by its ID
	GetByID(ctx context.Context, id int) (*model.Summary, error)

	// GetByVideoIDAndModel retrieves the summary for a video produced by a specific backend and model
	GetByVideoIDAndModel(ctx context.Context, videoID, language, backend, modelName string) (*model.Summary, error)

	// GetByVideoID retrieves all summaries for a video with pagination
	GetByVideoID(ctx context.Context, videoID string, limit, offset int) ([]*model.Summary, error)

	// List retrieves summaries with pagination
	List(ctx context.Context, limit, offset int) ([]*model.Summary, error)

	// Delete deletes a summary by its ID
	Delete(ctx context.Context, id int) error
}
