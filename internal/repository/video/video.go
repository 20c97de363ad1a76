package video

import (
	"context"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// Repository defines operations for Video persistence
type Repository interface {
	// Create creates a new video record
	Create(ctx context.Context, video *model.Video) error

	// Upsert creates a video record or refreshes it if it already exists
	Upsert(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its ID
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// List retrieves videos with pagination
	List(ctx context.Context, limit, offset int) ([]*model.Video, error)

	// Delete deletes a video by its ID
	Delete(ctx context.Context, id string) error
}
