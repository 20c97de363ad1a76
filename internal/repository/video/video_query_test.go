package video

import (
	"context"
	"testing"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepository_List(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		offset  int
		setup   func(mock pgxmock.PgxPoolIface)
		want    []*model.Video
		wantErr bool
	}{
		{
			name:   "successful list with pagination",
			limit:  2,
			offset: 0,
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "title", "channel", "url", "duration"}).
					AddRow("dQw4w9WgXcQ", "Never Gonna Give You Up", "Rick Astley", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", 212.0).
					AddRow("oHg5SJYRHA0", "Never Gonna Let You Down", "Rick Astley", "https://www.youtube.com/watch?v=oHg5SJYRHA0", 233.0)
				mock.ExpectQuery("SELECT id, title, channel, url, duration FROM videos ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
					WithArgs(2, 0).
					WillReturnRows(rows)
			},
			want: []*model.Video{
				{
					ID:       "dQw4w9WgXcQ",
					Title:    "Never Gonna Give You Up",
					Channel:  "Rick Astley",
					URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
					Duration: 212.0,
				},
				{
					ID:       "oHg5SJYRHA0",
					Title:    "Never Gonna Let You Down",
					Channel:  "Rick Astley",
					URL:      "https://www.youtube.com/watch?v=oHg5SJYRHA0",
					Duration: 233.0,
				},
			},
			wantErr: false,
		},
		{
			name:   "empty result",
			limit:  10,
			offset: 100,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, title, channel, url, duration FROM videos ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
					WithArgs(10, 100).
					WillReturnRows(pgxmock.NewRows([]string{"id", "title", "channel", "url", "duration"}))
			},
			want:    []*model.Video{},
			wantErr: false,
		},
		{
			name:   "database error",
			limit:  10,
			offset: 0,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, title, channel, url, duration FROM videos ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
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
