package summary

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	summaryRepo "github.com/Taichi-iskw/yt-brief/internal/repository/summary"
	"github.com/Taichi-iskw/yt-brief/internal/repository/video"
	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
	"github.com/Taichi-iskw/yt-brief/internal/service/subtitle"
	"github.com/Taichi-iskw/yt-brief/internal/service/summarizer"
	"github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// Options carries command line overrides for the summary pipeline
type Options struct {
	Backend string // completion backend override ("ollama" or "gemini")
	Model   string // model name override for the chosen backend
	Prompt  string // custom summary prompt
}

// ServiceFactory creates summary service instances
type ServiceFactory struct {
	cfg *config.Config
}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateService creates a summary service backed by the database
func (f *ServiceFactory) CreateService(ctx context.Context, opts Options) (service.SummaryService, func(), error) {
	// Load configuration
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	// Create database connection
	dbPool, err := config.NewDatabasePool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create repositories
	videoRepository := video.NewRepository(dbPool)
	summaryRepository := summaryRepo.NewRepository(dbPool)

	backend, modelName, textSummarizer, err := buildSummarizer(ctx, cfg, opts)
	if err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	// Create services
	cmdRunner := common.NewCmdRunner()
	youtubeService := youtube.NewYouTubeServiceWithRepository(cmdRunner, videoRepository)
	extractor := subtitle.NewExtractorWithCmdRunner(cmdRunner)

	summaryService := service.NewSummaryServiceWithRepositories(
		youtubeService,
		extractor,
		textSummarizer,
		videoRepository,
		summaryRepository,
		backend,
		modelName,
		opts.Prompt,
	)

	// Cleanup function
	cleanup := func() {
		dbPool.Close()
	}

	return summaryService, cleanup, nil
}

// CreateLocalService creates a summary service without database access
func (f *ServiceFactory) CreateLocalService(ctx context.Context, opts Options) (service.SummaryService, func(), error) {
	// A config file is optional here so local summaries work out of the box
	cfg := f.localConfig()

	backend, modelName, textSummarizer, err := buildSummarizer(ctx, cfg, opts)
	if err != nil {
		return nil, nil, err
	}

	// Create services
	cmdRunner := common.NewCmdRunner()
	youtubeService := youtube.NewYouTubeServiceWithCmdRunner(cmdRunner)
	extractor := subtitle.NewExtractorWithCmdRunner(cmdRunner)

	summaryService := service.NewSummaryService(
		youtubeService,
		extractor,
		textSummarizer,
		backend,
		modelName,
		opts.Prompt,
	)

	cleanup := func() {}

	return summaryService, cleanup, nil
}

// DefaultLanguage returns the configured default subtitle language
func (f *ServiceFactory) DefaultLanguage() string {
	return f.localConfig().Summary.Language
}

// loadConfig loads the configuration file once and caches it
func (f *ServiceFactory) loadConfig() (*config.Config, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	f.cfg = cfg
	return cfg, nil
}

// localConfig returns the configuration for database-free runs, falling
// back to built-in defaults when no config file exists
func (f *ServiceFactory) localConfig() *config.Config {
	if cfg, err := f.loadConfig(); err == nil {
		return cfg
	}
	return config.DefaultConfig()
}

// buildSummarizer assembles the completion client and chunked summarizer
// for the requested backend
func buildSummarizer(ctx context.Context, cfg *config.Config, opts Options) (string, string, summarizer.Summarizer, error) {
	backend := cfg.Summary.Backend
	if opts.Backend != "" {
		backend = opts.Backend
	}

	var client summarizer.CompletionClient
	var modelName string

	switch backend {
	case "ollama":
		modelName = cfg.Summary.OllamaModel
		if opts.Model != "" {
			modelName = opts.Model
		}
		client = summarizer.NewOllamaClient(common.NewCmdRunner(), modelName)
	case "gemini":
		modelName = cfg.Summary.GeminiModel
		if opts.Model != "" {
			modelName = opts.Model
		}
		var err error
		client, err = summarizer.NewGeminiClient(ctx, cfg.Summary.GeminiAPIKey, modelName)
		if err != nil {
			return "", "", nil, err
		}
	default:
		return "", "", nil, fmt.Errorf("unsupported backend: %s (expected ollama or gemini)", backend)
	}

	textSummarizer, err := summarizer.NewSummarizer(client, summarizer.Config{
		MaxChunkSize: cfg.Summary.MaxChunkSize,
		ChunkSize:    cfg.Summary.ChunkSize,
	})
	if err != nil {
		return "", "", nil, err
	}

	return backend, modelName, textSummarizer, nil
}
