package privilege

import (
	"context"
	"os"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockPrivilegedFS mocks the interfaces.PrivilegedFS interface
type MockPrivilegedFS struct {
	mock.Mock
}

// ChownRecursive mocks the ChownRecursive method
func (m *MockPrivilegedFS) ChownRecursive(ctx context.Context, path string, owner interfaces.Ownership) error {
	args := m.Called(ctx, path, owner)
	return args.Error(0)
}

// Chmod mocks the Chmod method
func (m *MockPrivilegedFS) Chmod(ctx context.Context, path string, mode os.FileMode) error {
	args := m.Called(ctx, path, mode)
	return args.Error(0)
}

// RequiredTools mocks the RequiredTools method
func (m *MockPrivilegedFS) RequiredTools(owner interfaces.Ownership) []string {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// CanApply mocks the CanApply method
func (m *MockPrivilegedFS) CanApply(owner interfaces.Ownership) error {
	args := m.Called(owner)
	return args.Error(0)
}
