package summarizer

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// ollamaClient generates completions with a local model via the ollama CLI
type ollamaClient struct {
	cmdRunner common.CmdRunner
	model     string
}

// NewOllamaClient creates a CompletionClient backed by `ollama run <model>`
func NewOllamaClient(cmdRunner common.CmdRunner, model string) CompletionClient {
	return &ollamaClient{
		cmdRunner: cmdRunner,
		model:     model,
	}
}

// Complete feeds the prompt and text to ollama on stdin and returns the model output
func (c *ollamaClient) Complete(ctx context.Context, text string, prompt string) (string, error) {
	if text == "" {
		return "", apperrors.New(apperrors.CodeInvalidArg, "text is required")
	}

	input := prompt + "\n\n" + text
	output, err := c.cmdRunner.RunWithInput(ctx, input, "ollama", "run", c.model)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", apperrors.Wrap(err, apperrors.CodeExternal, "ollama is not installed (https://ollama.com)")
		}
		return "", apperrors.Wrap(err, apperrors.CodeExternal, "failed to run ollama")
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return "", apperrors.New(apperrors.CodeExternal, "empty response from ollama")
	}

	return result, nil
}
