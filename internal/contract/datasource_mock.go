package contract

import (
	"context"

	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of DataSource for testing.
type MockDataSource struct {
	mock.Mock
}

var _ DataSource = &MockDataSource{} // Compile-time check

// Load implements the DataSource interface.
func (m *MockDataSource) Load(ctx context.Context) ([]schema.PickEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]schema.PickEntry)
	return entries, args.Error(1)
}
