package subtitle

import (
	"context"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// Extractor defines interface for extracting plain text from subtitle files
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// xmllintExtractor implements Extractor using xmllint
type xmllintExtractor struct {
	cmdRunner common.CmdRunner
}

// NewExtractor creates a new Extractor
func NewExtractor() Extractor {
	return NewExtractorWithCmdRunner(common.NewCmdRunner())
}

// NewExtractorWithCmdRunner creates a new Extractor with custom CmdRunner (for testing)
func NewExtractorWithCmdRunner(cmdRunner common.CmdRunner) Extractor {
	return &xmllintExtractor{
		cmdRunner: cmdRunner,
	}
}

// ExtractText pulls the spoken text out of a TTML subtitle file
func (e *xmllintExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	// Input validation
	if path == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "subtitle file path is required")
	}

	// local-name() keeps the XPath independent of the TTML default namespace
	args := []string{
		"--xpath", "string(//*[local-name()='body'])",
		path,
	}

	output, err := e.cmdRunner.Run(ctx, "xmllint", args...)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternal, "failed to extract subtitle text with xmllint")
	}

	// Collapse whitespace runs left over from XML markup
	text := strings.Join(strings.Fields(string(output)), " ")
	if text == "" {
		return "", apperrors.New(apperrors.CodeExternal, "subtitle file produced no text")
	}

	return text, nil
}
