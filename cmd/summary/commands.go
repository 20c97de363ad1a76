package summary

import (
	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the main summary command
func NewSummaryCommand(summaryService service.SummaryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Manage video summaries",
		Long:  `Create, get, list, and delete AI-generated summaries of YouTube videos`,
	}

	// Add subcommands
	cmd.AddCommand(NewCreateCommand(summaryService))
	cmd.AddCommand(NewGetCommand(summaryService))
	cmd.AddCommand(NewListCommand(summaryService))
	cmd.AddCommand(NewDeleteCommand(summaryService))

	return cmd
}
