package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/repository/video"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
	youtubeSvc "github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// videoCmd represents the video command
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "YouTube video operations",
	Long:  `Operations for fetching and managing YouTube video metadata.`,
}

// videoInfoCmd shows metadata for a single video
var videoInfoCmd = &cobra.Command{
	Use:   "info [VIDEO_URL]",
	Short: "Show metadata for a YouTube video",
	Long:  `Fetch video metadata (title, channel, duration) using yt-dlp.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		// Get flags
		save, _ := cmd.Flags().GetBool("save")
		format, _ := cmd.Flags().GetString("format")

		var info *model.Video
		if save {
			// Load configuration
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Create database connection
			dbPool, err := config.NewDatabasePool(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer dbPool.Close()

			// Create YouTube service with repository
			videoRepo := video.NewRepository(dbPool)
			youtubeService := youtubeSvc.NewYouTubeServiceWithRepository(common.NewCmdRunner(), videoRepo)

			info, err = youtubeService.SaveVideoInfo(ctx, videoURL)
			if err != nil {
				return fmt.Errorf("failed to save video info: %w", err)
			}
		} else {
			youtubeService := youtubeSvc.NewYouTubeService()

			var err error
			info, err = youtubeService.FetchVideoInfo(ctx, videoURL)
			if err != nil {
				return fmt.Errorf("failed to fetch video info: %w", err)
			}
		}

		// Display result
		switch format {
		case "json":
			result, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}
			fmt.Println(string(result))
		case "text":
			fmt.Printf("ID:       %s\n", info.ID)
			fmt.Printf("Title:    %s\n", info.Title)
			fmt.Printf("Channel:  %s\n", info.Channel)
			fmt.Printf("Duration: %s\n", formatDuration(info.Duration))
			fmt.Printf("URL:      %s\n", info.URL)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		if save {
			fmt.Println("\nVideo saved to database")
		}
		return nil
	},
}

// videoListCmd lists videos saved in the database
var videoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved videos",
	Long:  `List videos saved in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Create database connection
		dbPool, err := config.NewDatabasePool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer dbPool.Close()

		// Create YouTube service with repository
		videoRepo := video.NewRepository(dbPool)
		youtubeService := youtubeSvc.NewYouTubeServiceWithRepository(common.NewCmdRunner(), videoRepo)

		// Get pagination flags
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		// List videos
		videos, err := youtubeService.ListVideos(ctx, limit, offset)
		if err != nil {
			return fmt.Errorf("failed to list videos: %w", err)
		}

		// Check if no videos found
		if len(videos) == 0 {
			fmt.Println("No videos found in the database.")
			return nil
		}

		// Display result as JSON
		result, err := json.MarshalIndent(videos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Printf("Found %d video(s):\n%s\n", len(videos), string(result))
		return nil
	},
}

// formatDuration renders a duration in seconds as H:MM:SS or M:SS
func formatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func init() {
	videoInfoCmd.Flags().Bool("save", false, "Save the video metadata to the database")
	videoInfoCmd.Flags().String("format", "text", "Output format (text, json)")

	// Add pagination flags to list command
	videoListCmd.Flags().Int("limit", 10, "Maximum number of videos to retrieve")
	videoListCmd.Flags().Int("offset", 0, "Number of videos to skip")

	videoCmd.AddCommand(videoInfoCmd)
	videoCmd.AddCommand(videoListCmd)
	rootCmd.AddCommand(videoCmd)
}
