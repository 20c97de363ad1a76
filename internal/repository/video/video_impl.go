package video

import (
	"context"
	"errors"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// videoRepository implements Repository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &videoRepository{
		pool: pool,
	}
}

// Create creates a new video record
func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	sql := "INSERT INTO videos (id, title, channel, url, duration) VALUES ($1, $2, $3, $4, $5)"
	_, err := r.pool.Exec(ctx, sql, video.ID, video.Title, video.Channel, video.URL, video.Duration)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create video")
	}
	return nil
}

// Upsert creates a video record or refreshes its metadata if it already exists
func (r *videoRepository) Upsert(ctx context.Context, video *model.Video) error {
	sql := `INSERT INTO videos (id, title, channel, url, duration) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, channel = EXCLUDED.channel, url = EXCLUDED.url, duration = EXCLUDED.duration`
	_, err := r.pool.Exec(ctx, sql, video.ID, video.Title, video.Channel, video.URL, video.Duration)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to upsert video")
	}
	return nil
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	sql := "SELECT id, title, channel, url, duration FROM videos WHERE id = $1"
	row := r.pool.QueryRow(ctx, sql, id)

	var video model.Video
	err := row.Scan(&video.ID, &video.Title, &video.Channel, &video.URL, &video.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get video")
	}

	return &video, nil
}

// List retrieves videos with pagination, newest first
func (r *videoRepository) List(ctx context.Context, limit, offset int) ([]*model.Video, error) {
	sql := "SELECT id, title, channel, url, duration FROM videos ORDER BY created_at DESC LIMIT $1 OFFSET $2"
	rows, err := r.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list videos")
	}
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		var video model.Video
		err := rows.Scan(&video.ID, &video.Title, &video.Channel, &video.URL, &video.Duration)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan video row")
		}
		videos = append(videos, &video)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate video rows")
	}

	return videos, nil
}

// Delete deletes a video by its ID
func (r *videoRepository) Delete(ctx context.Context, id string) error {
	sql := "DELETE FROM videos WHERE id = $1"
	_, err := r.pool.Exec(ctx, sql, id)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete video")
	}
	return nil
}
