package subtitle

import "context"

// MockCmdRunner implements common.CmdRunner for testing
type MockCmdRunner struct {
	RunFunc          func(ctx context.Context, name string, args ...string) ([]byte, error)
	RunWithInputFunc func(ctx context.Context, input string, name string, args ...string) ([]byte, error)
}

func (m *MockCmdRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return []byte("mocked output"), nil
}

func (m *MockCmdRunner) RunWithInput(ctx context.Context, input string, name string, args ...string) ([]byte, error) {
	if m.RunWithInputFunc != nil {
		return m.RunWithInputFunc(ctx, input, name, args...)
	}
	return []byte("mocked output"), nil
}
