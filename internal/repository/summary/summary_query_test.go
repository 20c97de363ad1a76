package summary

import (
	"context"
	"testing"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRepository_GetByVideoID(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		videoID string
		limit   int
		offset  int
		setup   func(mock pgxmock.PgxPoolIface)
		want    []*model.Summary
		wantErr bool
	}{
		{
			name:    "summaries found for video",
			videoID: "dQw4w9WgXcQ",
			limit:   10,
			offset:  0,
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "video_id", "language", "backend", "model", "content", "created_at"}).
					AddRow(2, "dQw4w9WgXcQ", "ja", "gemini", "gemini-2.5-flash", "ある男が決して諦めないと約束する。", createdAt).
					AddRow(1, "dQw4w9WgXcQ", "en", "ollama", "llama3.2", "A man promises to never give you up.", createdAt)
				mock.ExpectQuery("SELECT id, video_id, language, backend, model, content, created_at").
					WithArgs("dQw4w9WgXcQ", 10, 0).
					WillReturnRows(rows)
			},
			want: []*model.Summary{
				{
					ID:        2,
					VideoID:   "dQw4w9WgXcQ",
					Language:  "ja",
					Backend:   "gemini",
					Model:     "gemini-2.5-flash",
					Content:   "ある男が決して諦めないと約束する。",
					CreatedAt: createdAt,
				},
				{
					ID:        1,
					VideoID:   "dQw4w9WgXcQ",
					Language:  "en",
					Backend:   "ollama",
					Model:     "llama3.2",
					Content:   "A man promises to never give you up.",
					CreatedAt: createdAt,
				},
			},
			wantErr: false,
		},
		{
			name:    "no summaries found",
			videoID: "notfound",
			limit:   10,
			offset:  0,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, video_id, language, backend, model, content, created_at").
					WithArgs("notfound", 10, 0).
					WillReturnRows(pgxmock.NewRows([]string{"id", "video_id", "language", "backend", "model", "content", "created_at"}))
			},
			want:    []*model.Summary{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup pgxmock
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			// Setup expectations
			tt.setup(mock)

			// Create repository
			repo := NewRepository(mock)

			// Execute test
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.GetByVideoID(ctx, tt.videoID, tt.limit, tt.offset)

			// Verify result
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			// Verify all expectations were met
			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}

func TestSummaryRepository_List(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		limit   int
		offset  int
		setup   func(mock pgxmock.PgxPoolIface)
		want    []*model.Summary
		wantErr bool
	}{
		{
			name:   "successful list with pagination",
			limit:  2,
			offset: 0,
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "video_id", "language", "backend", "model", "content", "created_at"}).
					AddRow(2, "oHg5SJYRHA0", "en", "ollama", "llama3.2", "Another summary.", createdAt).
					AddRow(1, "dQw4w9WgXcQ", "en", "ollama", "llama3.2", "A man promises to never give you up.", createdAt)
				mock.ExpectQuery("SELECT id, video_id, language, backend, model, content, created_at").
					WithArgs(2, 0).
					WillReturnRows(rows)
			},
			want: []*model.Summary{
				{
					ID:        2,
					VideoID:   "oHg5SJYRHA0",
					Language:  "en",
					Backend:   "ollama",
					Model:     "llama3.2",
					Content:   "Another summary.",
					CreatedAt: createdAt,
				},
				{
					ID:        1,
					VideoID:   "dQw4w9WgXcQ",
					Language:  "en",
					Backend:   "ollama",
					Model:     "llama3.2",
					Content:   "A man promises to never give you up.",
					CreatedAt: createdAt,
				},
			},
			wantErr: false,
		},
		{
			name:   "database error",
			limit:  10,
			offset: 0,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, video_id, language, backend, model, content, created_at").
					WithArgs(10, 0).
					WillReturnError(assert.AnError)
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup pgxmock
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			// Setup expectations
			tt.setup(mock)

			// Create repository
			repo := NewRepository(mock)

			// Execute test
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.List(ctx, tt.limit, tt.offset)

			// Verify result
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			// Verify all expectations were met
			err = mock.ExpectationsWereMet()
			assert.NoError(t, err, "pgxmock expectations were not met")
		})
	}
}
