package store

import (
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSnapshotStore implements the StoreManager interface.
func (m *MockStoreManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// BeginRun implements the SnapshotStore interface.
func (m *MockSnapshotStore) BeginRun(startTime time.Time, metric schema.RankMetric, scope schema.Scope, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, metric, scope, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// RecordStanding implements the SnapshotStore interface.
func (m *MockSnapshotStore) RecordStanding(runID int64, standing schema.Standing) error {
	args := m.Called(runID, standing)
	return args.Error(0)
}

// EndRun implements the SnapshotStore interface.
func (m *MockSnapshotStore) EndRun(runID int64, endTime time.Time, totalUsers, totalPicks int) error {
	args := m.Called(runID, endTime, totalUsers, totalPicks)
	return args.Error(0)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// GetAllRuns implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllRuns() ([]schema.SnapshotRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.SnapshotRunRecord)
	return runs, args.Error(1)
}

// GetAllStandings implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllStandings() ([]schema.SnapshotStandingRecord, error) {
	args := m.Called()
	standings, _ := args.Get(0).([]schema.SnapshotStandingRecord)
	return standings, args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
