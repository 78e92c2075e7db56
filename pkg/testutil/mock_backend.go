// Package testutil provides testing utilities
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/skysort/sceneryctl/pkg/types"
)

// MockBackend is a mock implementation of types.Backend for testing.
// It records every call, serves a canned index, and can be told to
// fail a specific operation with a specific error.
type MockBackend struct {
	mu sync.Mutex

	index *types.Index

	categories map[string]types.Category
	deleted    []string
	applied    [][]types.Update

	calls         []string
	errorOn       string
	errorToReturn error
}

// NewMockBackend creates a mock backend serving the given index.
func NewMockBackend(index *types.Index) *MockBackend {
	return &MockBackend{
		index:      index,
		categories: make(map[string]types.Category),
	}
}

// FailOn makes the named operation ("LoadIndex", "ApplyOrder",
// "UpdateCategory", "DeleteEntry") return err.
func (m *MockBackend) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOn = op
	m.errorToReturn = err
}

// Calls returns the recorded call log.
func (m *MockBackend) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Applied returns every update batch received by ApplyOrder.
func (m *MockBackend) Applied() [][]types.Update {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied
}

// Deleted returns the folder names deleted so far.
func (m *MockBackend) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleted
}

// Categories returns the category writes received so far.
func (m *MockBackend) Categories() map[string]types.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]types.Category, len(m.categories))
	for k, v := range m.categories {
		out[k] = v
	}
	return out
}

// LoadIndex serves the canned index.
func (m *MockBackend) LoadIndex(_ context.Context) (*types.Index, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "LoadIndex()")
	if m.errorOn == "LoadIndex" {
		return nil, m.errorToReturn
	}
	return m.index, nil
}

// ApplyOrder records the update batch.
func (m *MockBackend) ApplyOrder(_ context.Context, updates []types.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("ApplyOrder(%d)", len(updates)))
	if m.errorOn == "ApplyOrder" {
		return m.errorToReturn
	}
	batch := make([]types.Update, len(updates))
	copy(batch, updates)
	m.applied = append(m.applied, batch)
	return nil
}

// UpdateCategory records the category write.
func (m *MockBackend) UpdateCategory(_ context.Context, folderName string, category types.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("UpdateCategory(%s,%s)", folderName, category))
	if m.errorOn == "UpdateCategory" {
		return m.errorToReturn
	}
	m.categories[folderName] = category
	return nil
}

// DeleteEntry records the deletion.
func (m *MockBackend) DeleteEntry(_ context.Context, folderName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("DeleteEntry(%s)", folderName))
	if m.errorOn == "DeleteEntry" {
		return m.errorToReturn
	}
	m.deleted = append(m.deleted, folderName)
	return nil
}
