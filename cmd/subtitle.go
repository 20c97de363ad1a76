package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	subtitleSvc "github.com/Taichi-iskw/yt-brief/internal/service/subtitle"
	youtubeSvc "github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// subtitleCmd represents the subtitle command
var subtitleCmd = &cobra.Command{
	Use:   "subtitle",
	Short: "Subtitle operations",
	Long:  `Operations for listing, downloading, and extracting YouTube subtitles.`,
}

// subtitleListCmd lists available subtitle tracks for a video
var subtitleListCmd = &cobra.Command{
	Use:   "list [VIDEO_URL]",
	Short: "List available subtitle tracks",
	Long:  `List subtitle tracks (manual and auto-generated) available for a YouTube video.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		youtubeService := youtubeSvc.NewYouTubeService()

		tracks, err := youtubeService.ListSubtitleTracks(ctx, videoURL)
		if err != nil {
			return fmt.Errorf("failed to list subtitle tracks: %w", err)
		}

		// Check if no tracks found
		if len(tracks) == 0 {
			fmt.Println("No subtitle tracks found for this video.")
			return nil
		}

		fmt.Printf("%-10s %-28s %-6s %s\n", "LANGUAGE", "NAME", "KIND", "FORMATS")
		for _, track := range tracks {
			kind := "manual"
			if track.Auto {
				kind = "auto"
			}
			fmt.Printf("%-10s %-28s %-6s %s\n", track.Language, track.Name, kind, strings.Join(track.Formats, ", "))
		}
		return nil
	},
}

// subtitleDownloadCmd downloads subtitles for a video
var subtitleDownloadCmd = &cobra.Command{
	Use:   "download [VIDEO_URL]",
	Short: "Download subtitles for a video",
	Long:  `Download subtitles for a YouTube video in TTML format using yt-dlp.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		// Get flags
		lang, _ := cmd.Flags().GetString("lang")
		outputDir, _ := cmd.Flags().GetString("output")

		youtubeService := youtubeSvc.NewYouTubeService()

		path, err := youtubeService.DownloadSubtitles(ctx, videoURL, lang, outputDir)
		if err != nil {
			return fmt.Errorf("failed to download subtitles: %w", err)
		}

		fmt.Printf("Subtitles downloaded: %s\n", path)
		return nil
	},
}

// subtitleTextCmd prints the plain text of a video's subtitles
var subtitleTextCmd = &cobra.Command{
	Use:   "text [VIDEO_URL]",
	Short: "Print subtitle text for a video",
	Long:  `Download subtitles to a temporary directory, extract their plain text, and print it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		// Get flags
		lang, _ := cmd.Flags().GetString("lang")

		// Create temp directory for subtitle download
		tempDir, err := os.MkdirTemp("", "ytbrief-subtitles-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)

		youtubeService := youtubeSvc.NewYouTubeService()

		path, err := youtubeService.DownloadSubtitles(ctx, videoURL, lang, tempDir)
		if err != nil {
			return fmt.Errorf("failed to download subtitles: %w", err)
		}

		extractor := subtitleSvc.NewExtractor()
		text, err := extractor.ExtractText(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to extract subtitle text: %w", err)
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	subtitleDownloadCmd.Flags().String("lang", "en", "Subtitle language code")
	subtitleDownloadCmd.Flags().String("output", ".", "Directory to save the subtitle file")

	subtitleTextCmd.Flags().String("lang", "en", "Subtitle language code")

	subtitleCmd.AddCommand(subtitleListCmd)
	subtitleCmd.AddCommand(subtitleDownloadCmd)
	subtitleCmd.AddCommand(subtitleTextCmd)
	rootCmd.AddCommand(subtitleCmd)
}
