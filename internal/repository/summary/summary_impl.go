package summary

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

// summaryRepository implements Repository using PostgreSQL
type summaryRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &summaryRepository{
		pool: pool,
	}
}

// Create creates a new summary record
func (r *summaryRepository) Create(ctx context.Context, summary *model.Summary) error {
	sql := `INSERT INTO summaries (video_id, language, backend, model, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, sql,
		summary.VideoID,
		summary.Language,
		summary.Backend,
		summary.Model,
		summary.Content,
	).Scan(&summary.ID, &summary.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create summary")
	}
	return nil
}

// GetByID retrieves a summary by its ID
func (r *summaryRepository) GetByID(ctx context.Context, id int) (*model.Summary, error) {
	sql := `SELECT id, video_id, language, backend, model, content, created_at
		FROM summaries WHERE id = $1`
	row := r.pool.QueryRow(ctx, sql, id)

	var summary model.Summary
	err := row.Scan(
		&summary.ID,
		&summary.VideoID,
		&summary.Language,
		&summary.Backend,
		&summary.Model,
		&summary.Content,
		&summary.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "summary not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get summary")
	}
	return &summary, nil
}

// GetByVideoIDAndModel retrieves the summary for a video produced by a specific backend and model
func (r *summaryRepository) GetByVideoIDAndModel(ctx context.Context, videoID, language, backend, modelName string) (*model.Summary, error) {
	sql := `SELECT id, video_id, language, backend, model, content, created_at
		FROM summaries WHERE video_id = $1 AND language = $2 AND backend = $3 AND model = $4`
	row := r.pool.QueryRow(ctx, sql, videoID, language, backend, modelName)

	var summary model.Summary
	err := row.Scan(
		&summary.ID,
		&summary.VideoID,
		&summary.Language,
		&summary.Backend,
		&summary.Model,
		&summary.Content,
		&summary.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "summary not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get summary")
	}
	return &summary, nil
}

// GetByVideoID retrieves all summaries for a video with pagination
func (r *summaryRepository) GetByVideoID(ctx context.Context, videoID string, limit, offset int) ([]*model.Summary, error) {
	sql := `SELECT id, video_id, language, backend, model, content, created_at
		FROM summaries WHERE video_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, sql, videoID, limit, offset)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to get summaries by video ID")
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// List retrieves summaries with pagination, newest first
func (r *summaryRepository) List(ctx context.Context, limit, offset int) ([]*model.Summary, error) {
	sql := `SELECT id, video_id, language, backend, model, content, created_at
		FROM summaries ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list summaries")
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// Delete deletes a summary by its ID
func (r *summaryRepository) Delete(ctx context.Context, id int) error {
	sql := "DELETE FROM summaries WHERE id = $1"
	_, err := r.pool.Exec(ctx, sql, id)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete summary")
	}
	return nil
}

// scanSummaries collects summary rows into a slice
func scanSummaries(rows pgx.Rows) ([]*model.Summary, error) {
	summaries := []*model.Summary{}
	for rows.Next() {
		var summary model.Summary
		err := rows.Scan(
			&summary.ID,
			&summary.VideoID,
			&summary.Language,
			&summary.Backend,
			&summary.Model,
			&summary.Content,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan summary row")
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate summary rows")
	}

	return summaries, nil
}
