package cmd

import (
	"github.com/Taichi-iskw/yt-brief/cmd/summary"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd *cobra.Command

func init() {
	// Subcommands create their services at run time through the factory
	summaryCmd = summary.NewSummaryCommand(nil)
	rootCmd.AddCommand(summaryCmd)
}
