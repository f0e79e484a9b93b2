package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, start, end time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, start, end)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
