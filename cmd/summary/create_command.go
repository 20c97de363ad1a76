package summary

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/service"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create summary command
func NewCreateCommand(summaryService service.SummaryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [VIDEO_URL]",
		Short: "Create a summary for a YouTube video",
		Long:  `Download subtitles for a YouTube video, summarize them with an AI backend, and store the result.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoURL := args[0]

			// Get flags
			lang, _ := cmd.Flags().GetString("lang")
			backend, _ := cmd.Flags().GetString("backend")
			modelName, _ := cmd.Flags().GetString("model")
			prompt, _ := cmd.Flags().GetString("prompt")
			noSave, _ := cmd.Flags().GetBool("no-save")
			format, _ := cmd.Flags().GetString("format")

			// Summarization of a long video can take minutes, so no timeout here
			ctx := context.Background()

			opts := Options{Backend: backend, Model: modelName, Prompt: prompt}
			factory := NewServiceFactory()

			// Use provided service if available (for testing), otherwise create real service
			var svc service.SummaryService
			var cleanup func()

			if summaryService != nil {
				svc = summaryService
			} else {
				var err error
				if noSave {
					svc, cleanup, err = factory.CreateLocalService(ctx, opts)
				} else {
					svc, cleanup, err = factory.CreateService(ctx, opts)
				}
				if err != nil {
					return fmt.Errorf("failed to create summary service: %w", err)
				}
				defer cleanup()
			}

			if lang == "" {
				lang = factory.DefaultLanguage()
			}

			// Run the pipeline
			var result *model.Summary
			var err error
			if noSave {
				result, err = svc.SummarizeVideo(ctx, videoURL, lang)
			} else {
				result, err = svc.CreateSummary(ctx, videoURL, lang)
			}
			if err != nil {
				return fmt.Errorf("failed to create summary: %w", err)
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
	cmd.Flags().String("lang", "", "Subtitle language (defaults to summary.language from config)")
	cmd.Flags().String("backend", "", "Completion backend: ollama or gemini (defaults to config)")
	cmd.Flags().String("model", "", "Model name for the chosen backend (defaults to config)")
	cmd.Flags().String("prompt", "", "Custom summary prompt")
	cmd.Flags().Bool("no-save", false, "Summarize without saving to the database")
	cmd.Flags().String("format", "text", "Output format (text, json, markdown)")

	return cmd
}
