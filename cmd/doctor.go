package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// doctorCmd checks that external tools are available
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are installed",
	Long:  `Check for yt-dlp, xmllint, and ollama, and report anything missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cmdRunner := common.NewCmdRunner()

		checks := []struct {
			name     string
			required bool
			hint     string
		}{
			{name: "yt-dlp", required: true, hint: "https://github.com/yt-dlp/yt-dlp"},
			{name: "xmllint", required: true, hint: "part of libxml2"},
			{name: "ollama", required: false, hint: "https://ollama.com, needed for the ollama backend"},
		}

		missingRequired := false
		for _, check := range checks {
			if _, err := cmdRunner.Run(ctx, check.name, "--version"); err != nil {
				fmt.Printf("%-8s %s (%s)\n", "missing", check.name, check.hint)
				if check.required {
					missingRequired = true
				}
				continue
			}
			fmt.Printf("%-8s %s\n", "ok", check.name)
		}

		// The gemini backend needs an API key instead of a local tool
		cfg, err := config.NewConfig()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		if cfg.Summary.GeminiAPIKey != "" {
			fmt.Printf("%-8s gemini API key\n", "ok")
		} else {
			fmt.Printf("%-8s gemini API key (set GEMINI_API_KEY for the gemini backend)\n", "unset")
		}

		if missingRequired {
			return fmt.Errorf("required tools are missing")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
