package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytbrief",
	Short: "Summarize YouTube videos from their subtitles",
	Long: `ytbrief turns YouTube videos into short text summaries.

It downloads subtitles with yt-dlp, extracts their plain text, and
summarizes the result with a local Ollama model or the Gemini API.
Summaries can be stored in PostgreSQL and retrieved later.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
