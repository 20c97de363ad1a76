package service

import (
	"context"
	"fmt"
	"os"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/summary"
	"github.com/Taichi-iskw/yt-brief/internal/repository/video"
	"github.com/Taichi-iskw/yt-brief/internal/service/subtitle"
	"github.com/Taichi-iskw/yt-brief/internal/service/summarizer"
	"github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// SummaryService defines operations for summary management
type SummaryService interface {
	// SummarizeVideo runs the subtitle-to-summary pipeline without touching
	// the database and returns an unsaved summary
	SummarizeVideo(ctx context.Context, videoURL string, language string) (*model.Summary, error)

	// CreateSummary runs the pipeline and persists the video and its summary,
	// returning an existing summary when one matches
	CreateSummary(ctx context.Context, videoURL string, language string) (*model.Summary, error)

	// GetSummary retrieves a summary by ID
	GetSummary(ctx context.Context, id int) (*model.Summary, error)

	// ListSummaries lists summaries, optionally filtered by video ID
	ListSummaries(ctx context.Context, videoID string, limit int, offset int) ([]*model.Summary, error)

	// DeleteSummary deletes a summary by ID
	DeleteSummary(ctx context.Context, id int) error
}

// summaryService implements SummaryService
type summaryService struct {
	youtubeService youtube.YouTubeService
	extractor      subtitle.Extractor
	summarizer     summarizer.Summarizer
	videoRepo      video.Repository
	summaryRepo    summary.Repository
	backend        string
	model          string
	prompt         string // optional override; empty means the per-language default
}

// NewSummaryService creates a SummaryService without persistence,
// for summarize-only runs
func NewSummaryService(youtubeService youtube.YouTubeService, extractor subtitle.Extractor, textSummarizer summarizer.Summarizer, backend string, modelName string, prompt string) SummaryService {
	return &summaryService{
		youtubeService: youtubeService,
		extractor:      extractor,
		summarizer:     textSummarizer,
		backend:        backend,
		model:          modelName,
		prompt:         prompt,
	}
}

// NewSummaryServiceWithRepositories creates a SummaryService that persists
// videos and summaries
func NewSummaryServiceWithRepositories(youtubeService youtube.YouTubeService, extractor subtitle.Extractor, textSummarizer summarizer.Summarizer, videoRepo video.Repository, summaryRepo summary.Repository, backend string, modelName string, prompt string) SummaryService {
	return &summaryService{
		youtubeService: youtubeService,
		extractor:      extractor,
		summarizer:     textSummarizer,
		videoRepo:      videoRepo,
		summaryRepo:    summaryRepo,
		backend:        backend,
		model:          modelName,
		prompt:         prompt,
	}
}

// SummarizeVideo runs the subtitle-to-summary pipeline without touching
// the database and returns an unsaved summary
func (s *summaryService) SummarizeVideo(ctx context.Context, videoURL string, language string) (*model.Summary, error) {
	videoInfo, err := s.youtubeService.FetchVideoInfo(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	content, err := s.summarizeFromSubtitles(ctx, videoURL, language)
	if err != nil {
		return nil, err
	}

	return &model.Summary{
		VideoID:  videoInfo.ID,
		Language: language,
		Backend:  s.backend,
		Model:    s.model,
		Content:  content,
	}, nil
}

// CreateSummary runs the pipeline and persists the video and its summary,
// returning an existing summary when one matches
func (s *summaryService) CreateSummary(ctx context.Context, videoURL string, language string) (*model.Summary, error) {
	videoInfo, err := s.youtubeService.FetchVideoInfo(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	// Reuse an existing summary for the same video, language, backend, and model
	existing, err := s.summaryRepo.GetByVideoIDAndModel(ctx, videoInfo.ID, language, s.backend, s.model)
	if err == nil {
		return existing, nil
	}

	content, err := s.summarizeFromSubtitles(ctx, videoURL, language)
	if err != nil {
		return nil, err
	}

	// Keep the video record current before attaching the summary
	if err := s.videoRepo.Upsert(ctx, videoInfo); err != nil {
		return nil, err
	}

	result := &model.Summary{
		VideoID:  videoInfo.ID,
		Language: language,
		Backend:  s.backend,
		Model:    s.model,
		Content:  content,
	}
	if err := s.summaryRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// summarizeFromSubtitles downloads subtitles into a temp directory, extracts
// their plain text, and summarizes it
func (s *summaryService) summarizeFromSubtitles(ctx context.Context, videoURL string, language string) (string, error) {
	tempDir, err := os.MkdirTemp("", "ytbrief-subtitles-*")
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	subtitlePath, err := s.youtubeService.DownloadSubtitles(ctx, videoURL, language, tempDir)
	if err != nil {
		return "", err
	}

	text, err := s.extractor.ExtractText(ctx, subtitlePath)
	if err != nil {
		return "", err
	}

	content, err := s.summarizer.SummarizeText(ctx, text, s.summaryPrompt(language))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternal, "failed to summarize subtitle text")
	}

	return content, nil
}

// GetSummary retrieves a summary by ID
func (s *summaryService) GetSummary(ctx context.Context, id int) (*model.Summary, error) {
	return s.summaryRepo.GetByID(ctx, id)
}

// ListSummaries lists summaries, optionally filtered by video ID
func (s *summaryService) ListSummaries(ctx context.Context, videoID string, limit int, offset int) ([]*model.Summary, error) {
	if limit <= 0 {
		limit = 10 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	if videoID == "" {
		return s.summaryRepo.List(ctx, limit, offset)
	}
	return s.summaryRepo.GetByVideoID(ctx, videoID, limit, offset)
}

// DeleteSummary deletes a summary by ID
func (s *summaryService) DeleteSummary(ctx context.Context, id int) error {
	return s.summaryRepo.Delete(ctx, id)
}

// summaryPrompt returns the prompt for the final summary pass
func (s *summaryService) summaryPrompt(language string) string {
	if s.prompt != "" {
		return s.prompt
	}
	return fmt.Sprintf("Summarize this video transcript in %s. Start with a one-sentence overview, then list the key points as bullet points.", promptLanguage(language))
}

// languageNames maps common subtitle language codes to the names used in prompts
var languageNames = map[string]string{
	"en": "English",
	"ja": "Japanese",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"pt": "Portuguese",
	"it": "Italian",
	"ko": "Korean",
	"zh": "Chinese",
	"vi": "Vietnamese",
}

// promptLanguage resolves a language code to a name the model understands,
// falling back to the code itself
func promptLanguage(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
