package summary

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get summary command
func NewGetCommand(summaryService service.SummaryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [SUMMARY_ID]",
		Short: "Get a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid summary ID: %s", args[0])
			}

			// Get flags
			format, _ := cmd.Flags().GetString("format")

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
				svc, cleanup, err = factory.CreateService(ctx, Options{})
				if err != nil {
					return fmt.Errorf("failed to create summary service: %w", err)
				}
				defer cleanup()
			}

			// Get summary
			ctx := context.Background()
			result, err := svc.GetSummary(ctx, summaryID)
			if err != nil {
				return fmt.Errorf("failed to get summary: %w", err)
			}

			// Format output
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			output, err := formatter.Format(result)
			if err != nil {
				return err
			}

			cmd.Println(output)
			return nil
		},
	}

	// Add flags
	cmd.Flags().String("format", "text", "Output format (text, json, markdown)")

	return cmd
}
