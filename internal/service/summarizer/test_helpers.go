package summarizer

import "context"

// completionCall captures the arguments of one Complete invocation
type completionCall struct {
	text   string
	prompt string
}

// mockCompletion is one scripted Complete result
type mockCompletion struct {
	result string
	err    error
}

// mockCompletionClient is a CompletionClient for tests whose responses are
// scripted in call order. Calls beyond the scripted responses return a
// canned summary.
type mockCompletionClient struct {
	calls     []completionCall
	responses []mockCompletion
}

func (m *mockCompletionClient) Complete(_ context.Context, text string, prompt string) (string, error) {
	call := len(m.calls)
	m.calls = append(m.calls, completionCall{text: text, prompt: prompt})
	if call < len(m.responses) {
		r := m.responses[call]
		return r.result, r.err
	}
	return "mocked summary", nil
}

// mockCmdRunner is a mock implementation of common.CmdRunner for tests
type mockCmdRunner struct {
	RunFunc          func(ctx context.Context, name string, args ...string) ([]byte, error)
	RunWithInputFunc func(ctx context.Context, input string, name string, args ...string) ([]byte, error)
}

func (m *mockCmdRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return []byte("mocked output"), nil
}

func (m *mockCmdRunner) RunWithInput(ctx context.Context, input string, name string, args ...string) ([]byte, error) {
	if m.RunWithInputFunc != nil {
		return m.RunWithInputFunc(ctx, input, name, args...)
	}
	return []byte("mocked output"), nil
}
