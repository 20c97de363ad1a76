package youtube

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/video"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// YouTubeService is interface for YouTube video operations
type YouTubeService interface {
	FetchVideoInfo(ctx context.Context, videoURL string) (*model.Video, error)
	SaveVideoInfo(ctx context.Context, videoURL string) (*model.Video, error)
	ListVideos(ctx context.Context, limit, offset int) ([]*model.Video, error)
	ListSubtitleTracks(ctx context.Context, videoURL string) ([]*model.SubtitleTrack, error)
	DownloadSubtitles(ctx context.Context, videoURL, language, outputDir string) (string, error)
}

// youTubeService implements YouTubeService
type youTubeService struct {
	cmdRunner common.CmdRunner
	videoRepo video.Repository
}

// NewYouTubeService creates a new YouTubeService
func NewYouTubeService() YouTubeService {
	return NewYouTubeServiceWithCmdRunner(common.NewCmdRunner())
}

// NewYouTubeServiceWithCmdRunner creates a new YouTubeService with custom CmdRunner (for testing)
func NewYouTubeServiceWithCmdRunner(cmdRunner common.CmdRunner) YouTubeService {
	return &youTubeService{
		cmdRunner: cmdRunner,
	}
}

// NewYouTubeServiceWithRepository creates a new YouTubeService backed by a video repository
func NewYouTubeServiceWithRepository(cmdRunner common.CmdRunner, videoRepo video.Repository) YouTubeService {
	return &youTubeService{
		cmdRunner: cmdRunner,
		videoRepo: videoRepo,
	}
}

// ytDlpVideoInfo represents yt-dlp JSON output structure for video info
type ytDlpVideoInfo struct {
	ID                string                           `json:"id"`
	Title             string                           `json:"title"`
	Channel           string                           `json:"channel"`
	URL               string                           `json:"webpage_url"`
	Duration          float64                          `json:"duration"`
	Subtitles         map[string][]ytDlpSubtitleFormat `json:"subtitles"`
	AutomaticCaptions map[string][]ytDlpSubtitleFormat `json:"automatic_captions"`
}

// ytDlpSubtitleFormat represents one downloadable format of a subtitle track
type ytDlpSubtitleFormat struct {
	Ext  string `json:"ext"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// translateYtDlpError maps common yt-dlp failures to user-facing messages
func translateYtDlpError(err error, operation string) *apperrors.AppError {
	if errors.Is(err, exec.ErrNotFound) {
		return apperrors.Wrap(err, apperrors.CodeExternal, "yt-dlp is not installed (https://github.com/yt-dlp/yt-dlp)")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return apperrors.Wrap(err, apperrors.CodeExternal, operation)
	}

	stderr := strings.ToLower(string(exitErr.Stderr))
	switch {
	case strings.Contains(stderr, "private video"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "video is private")
	case strings.Contains(stderr, "has been removed"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "video has been removed")
	case strings.Contains(stderr, "video unavailable"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "video is unavailable")
	case strings.Contains(stderr, "http error 404"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "video not found (HTTP 404)")
	case strings.Contains(stderr, "http error 403"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "access to video is forbidden (HTTP 403)")
	case strings.Contains(stderr, "http error 429"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "rate limited by YouTube, try again later (HTTP 429)")
	case strings.Contains(stderr, "unable to download"), strings.Contains(stderr, "network is unreachable"):
		return apperrors.Wrap(err, apperrors.CodeExternal, "network error while contacting YouTube")
	default:
		return apperrors.Wrap(err, apperrors.CodeExternal, operation)
	}
}
