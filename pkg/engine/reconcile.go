package engine

import (
	"context"
	"sort"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/types"
)

// LocallyDirty reports whether the entries differ from the snapshot in
// enabled state, sort order, or membership.
func (m *Manager) LocallyDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locallyDirtyLocked()
}

func (m *Manager) locallyDirtyLocked() bool {
	if len(m.entries) != len(m.snapshot) {
		return true
	}
	for _, e := range m.entries {
		s, ok := m.snapshot[e.FolderName]
		if !ok || s.enabled != e.Enabled || s.sortOrder != e.SortOrder {
			return true
		}
	}
	return false
}

// Drifted reports whether the backend flagged the on-disk order as out
// of sync with the last-synced index.
func (m *Manager) Drifted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.needsSync
}

// HasChanges is the public "something needs applying" signal: local
// edits pending, backend drift, or both.
func (m *Manager) HasChanges() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locallyDirtyLocked() || m.needsSync
}

// CurrentState reduces the reconciliation state to one value, with
// drift taking precedence over local edits.
func (m *Manager) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.needsSync:
		return StateDrifted
	case m.locallyDirtyLocked():
		return StateLocallyDirty
	default:
		return StateClean
	}
}

// Apply pushes the full order to the backend in one transaction. At
// most one apply may be in flight; a concurrent call is rejected, not
// queued. On success the snapshot is replaced and the drift flag
// cleared. On failure nothing changes locally and the error - with any
// backend code intact - is returned for the caller to surface.
func (m *Manager) Apply(ctx context.Context) error {
	m.mu.Lock()
	if m.applying {
		m.mu.Unlock()
		return errors.New(errors.ErrApplyInFlight, "an apply is already in flight")
	}
	m.applying = true

	// Normalize: sort orders are re-derived densely from the current
	// display order before being sent.
	m.renumber()
	updates := make([]types.Update, len(m.entries))
	for i, e := range m.entries {
		updates[i] = types.Update{
			FolderName: e.FolderName,
			Enabled:    e.Enabled,
			SortOrder:  e.SortOrder,
		}
	}
	m.mu.Unlock()

	err := m.backend.ApplyOrder(ctx, updates)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.applying = false

	if err != nil {
		m.logger.Error().Err(err).Int("updates", len(updates)).Msg("Apply failed, local state preserved")
		return err
	}

	m.snapshot = m.takeSnapshot()
	m.needsSync = false
	m.emit(Event{Kind: EventApplied})
	m.logger.Info().Int("updates", len(updates)).Msg("Order applied")
	return nil
}

// Reset discards local edits by restoring enabled state and sort order
// from the snapshot, then recomputes conflicts. The drift flag is left
// untouched: reverting local edits says nothing about the on-disk
// order.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if s, ok := m.snapshot[e.FolderName]; ok {
			e.Enabled = s.enabled
			e.SortOrder = s.sortOrder
		}
	}
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].SortOrder < m.entries[j].SortOrder
	})
	m.renumber()

	m.recomputeLocked()
	m.emit(Event{Kind: EventReset})
	m.logger.Debug().Msg("Local edits reset to snapshot")
}
