package summary

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// Formatter defines interface for output formatting
type Formatter interface {
	Format(summary *model.Summary) (string, error)
}

// TextFormatter formats output as plain text
type TextFormatter struct{}

// Format formats summary as plain text
func (f *TextFormatter) Format(summary *model.Summary) (string, error) {
	var output strings.Builder

	// Unsaved summaries have no ID yet
	if summary.ID != 0 {
		output.WriteString(fmt.Sprintf("Summary ID: %d\n", summary.ID))
	}
	output.WriteString(fmt.Sprintf("Video ID: %s\n", summary.VideoID))
	output.WriteString(fmt.Sprintf("Language: %s\n", summary.Language))
	output.WriteString(fmt.Sprintf("Backend: %s (%s)\n", summary.Backend, summary.Model))
	if !summary.CreatedAt.IsZero() {
		output.WriteString(fmt.Sprintf("Created At: %s\n", summary.CreatedAt.Format(time.RFC3339)))
	}
	output.WriteString("\n")
	output.WriteString("Content:\n")
	output.WriteString("========\n")
	output.WriteString(summary.Content)
	output.WriteString("\n")

	return output.String(), nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// Format formats summary as JSON
func (f *JSONFormatter) Format(summary *model.Summary) (string, error) {
	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return string(jsonBytes), nil
}

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct{}

// Format formats summary as Markdown
func (f *MarkdownFormatter) Format(summary *model.Summary) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Summary of %s\n\n", summary.VideoID))
	output.WriteString(fmt.Sprintf("- Language: %s\n", summary.Language))
	output.WriteString(fmt.Sprintf("- Backend: %s (%s)\n", summary.Backend, summary.Model))
	if !summary.CreatedAt.IsZero() {
		output.WriteString(fmt.Sprintf("- Created: %s\n", summary.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	output.WriteString("\n")
	output.WriteString(summary.Content)
	output.WriteString("\n")

	return output.String(), nil
}

// GetFormatter returns the appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown", "md":
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
