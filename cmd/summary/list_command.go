package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list summaries command
func NewListCommand(summaryService service.SummaryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [VIDEO_ID]",
		Short: "List summaries, optionally filtered by video",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := ""
			if len(args) > 0 {
				videoID = args[0]
			}

			// Get flags
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")

			// Use provided service if available (for testing), otherwise create real service
			var svc service.SummaryService
			var cleanup func()

			if summaryService != nil {
				svc = summaryService
			} else {
				// Create service using factory
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				factory := NewServiceFactory()
				var err error
				svc, cleanup, err = factory.CreateService(ctx, Options{})
				if err != nil {
					return fmt.Errorf("failed to create summary service: %w", err)
				}
				defer cleanup()
			}

			ctx := context.Background()
			summaries, err := svc.ListSummaries(ctx, videoID, limit, offset)
			if err != nil {
				return fmt.Errorf("failed to list summaries: %w", err)
			}

			if len(summaries) == 0 {
				if videoID != "" {
					cmd.Println("No summaries found for video", videoID)
				} else {
					cmd.Println("No summaries found")
				}
				return nil
			}

			// Display summaries
			if videoID != "" {
				cmd.Printf("Summaries for video %s:\n\n", videoID)
			}
			for _, s := range summaries {
				cmd.Printf("ID: %d\n", s.ID)
				cmd.Printf("Video ID: %s\n", s.VideoID)
				cmd.Printf("Language: %s\n", s.Language)
				cmd.Printf("Backend: %s (%s)\n", s.Backend, s.Model)
				cmd.Printf("Created: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
				cmd.Printf("Content Preview: %s\n", truncateString(s.Content, 100))
				cmd.Println("---")
			}

			return nil
		},
	}

	// Add flags
	cmd.Flags().Int("limit", 10, "Maximum number of summaries to list")
	cmd.Flags().Int("offset", 0, "Number of summaries to skip")

	return cmd
}
