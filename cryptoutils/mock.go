package cryptoutils

import (
	"context"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockGenerator mocks the interfaces.CertificateGenerator interface
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockGenerator) Generate(ctx context.Context, req interfaces.CertificateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// RequiredTools mocks the RequiredTools method
func (m *MockGenerator) RequiredTools() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// Name mocks the Name method
func (m *MockGenerator) Name() string {
	args := m.Called()
	return args.String(0)
}
