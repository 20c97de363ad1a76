package summary

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete summary command
func NewDeleteCommand(summaryService service.SummaryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [SUMMARY_ID]",
		Short: "Delete a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid summary ID: %s", args[0])
			}

			// Get flags
			force, _ := cmd.Flags().GetBool("force")

			// Confirmation prompt if not forced
			if !force {
				cmd.Printf("Are you sure you want to delete summary %d? (y/N): ", summaryID)
				var response string
				fmt.Fscanln(cmd.InOrStdin(), &response)

				if response != "y" && response != "Y" && response != "yes" {
					cmd.Println("Deletion cancelled")
					return nil
				}
			}

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

			ctx := context.Background()
			if err := svc.DeleteSummary(ctx, summaryID); err != nil {
				return fmt.Errorf("failed to delete summary: %w", err)
			}

			cmd.Printf("Summary %d deleted successfully\n", summaryID)
			return nil
		},
	}

	// Add flags
	cmd.Flags().Bool("force", false, "Force deletion without confirmation")

	return cmd
}
