package youtube

import (
	"context"
	"encoding/json"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// FetchVideoInfo fetches video metadata from a YouTube URL using yt-dlp
func (s *youTubeService) FetchVideoInfo(ctx context.Context, videoURL string) (*model.Video, error) {
	info, err := s.fetchVideoJSON(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	return &model.Video{
		ID:       info.ID,
		Title:    info.Title,
		Channel:  info.Channel,
		URL:      info.URL,
		Duration: info.Duration,
	}, nil
}

// SaveVideoInfo fetches video metadata and upserts it into the database
func (s *youTubeService) SaveVideoInfo(ctx context.Context, videoURL string) (*model.Video, error) {
	video, err := s.FetchVideoInfo(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.Upsert(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

// ListVideos retrieves saved videos with pagination
func (s *youTubeService) ListVideos(ctx context.Context, limit, offset int) ([]*model.Video, error) {
	// Validate pagination parameters
	if limit <= 0 {
		limit = 10 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	return s.videoRepo.List(ctx, limit, offset)
}

// fetchVideoJSON runs yt-dlp and parses the single-video JSON document
func (s *youTubeService) fetchVideoJSON(ctx context.Context, videoURL string) (*ytDlpVideoInfo, error) {
	// Input validation
	if videoURL == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "video URL is required")
	}

	args := []string{
		"-J",
		"--no-playlist",
		videoURL,
	}

	output, err := s.cmdRunner.Run(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, translateYtDlpError(err, "failed to fetch video info with yt-dlp")
	}

	var info ytDlpVideoInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to parse yt-dlp output")
	}

	return &info, nil
}
