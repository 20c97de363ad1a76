package youtube

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// ListSubtitleTracks lists subtitle tracks available for a video
func (s *youTubeService) ListSubtitleTracks(ctx context.Context, videoURL string) ([]*model.SubtitleTrack, error) {
	info, err := s.fetchVideoJSON(ctx, videoURL)
	if err != nil {
		return nil, err
	}

	// Manual tracks first, then auto-generated captions, each sorted by language
	tracks := make([]*model.SubtitleTrack, 0, len(info.Subtitles)+len(info.AutomaticCaptions))
	tracks = append(tracks, collectTracks(info.Subtitles, false)...)
	tracks = append(tracks, collectTracks(info.AutomaticCaptions, true)...)

	return tracks, nil
}

// DownloadSubtitles downloads the subtitle track for a video into outputDir and returns its path
func (s *youTubeService) DownloadSubtitles(ctx context.Context, videoURL, language, outputDir string) (string, error) {
	// Input validation
	if videoURL == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "video URL is required")
	}
	if language == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "subtitle language is required")
	}

	args := []string{
		"--skip-download",
		"--write-auto-subs",
		"--sub-lang", language,
		"--sub-format", "ttml",
		"--output", filepath.Join(outputDir, "%(id)s.%(ext)s"),
		videoURL,
	}

	if _, err := s.cmdRunner.Run(ctx, "yt-dlp", args...); err != nil {
		return "", translateYtDlpError(err, "failed to download subtitles with yt-dlp")
	}

	return findSubtitleFile(outputDir, language)
}

// collectTracks converts a yt-dlp subtitle map to tracks sorted by language
func collectTracks(subtitles map[string][]ytDlpSubtitleFormat, auto bool) []*model.SubtitleTrack {
	languages := make([]string, 0, len(subtitles))
	for language := range subtitles {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	tracks := make([]*model.SubtitleTrack, 0, len(languages))
	for _, language := range languages {
		track := &model.SubtitleTrack{
			Language: language,
			Auto:     auto,
		}

		seen := make(map[string]bool)
		for _, format := range subtitles[language] {
			if track.Name == "" {
				track.Name = format.Name
			}
			if format.Ext != "" && !seen[format.Ext] {
				seen[format.Ext] = true
				track.Formats = append(track.Formats, format.Ext)
			}
		}

		tracks = append(tracks, track)
	}

	return tracks
}

// findSubtitleFile locates the downloaded .ttml file for a language
func findSubtitleFile(outputDir, language string) (string, error) {
	pattern := filepath.Join(outputDir, "*."+language+".ttml")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan output directory")
	}
	if len(matches) == 0 {
		return "", apperrors.New(apperrors.CodeExternal, "no subtitles were downloaded (language '"+language+"' may not be available)")
	}

	// The directory may hold earlier downloads, take the newest match
	latest := matches[0]
	var latestMod time.Time
	for _, match := range matches {
		fileInfo, err := os.Stat(match)
		if err != nil {
			continue
		}
		if fileInfo.ModTime().After(latestMod) {
			latestMod = fileInfo.ModTime()
			latest = match
		}
	}

	return latest, nil
}
