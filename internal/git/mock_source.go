package git

import "context"

// MockDiffSource is a test double for DiffSource. It serves predefined diff
// text per commit SHA without needing a real Git repository.
type MockDiffSource struct {
	Diffs  map[string]string
	Errors map[string]error
}

// DiffText returns the predefined diff or error for the SHA.
func (m *MockDiffSource) DiffText(_ context.Context, sha string) (string, error) {
	if err, ok := m.Errors[sha]; ok {
		return "", err
	}
	return m.Diffs[sha], nil
}

// Compile-time interface conformance check.
var _ DiffSource = (*MockDiffSource)(nil)
