package engine

import (
	"context"
	"sort"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/types"
)

// SetEnabled toggles whether a package is active. This is a staged
// local edit: it marks the index dirty and is pushed on the next
// Apply. Enabled state does not affect conflict sets, so no recompute
// is scheduled.
func (m *Manager) SetEnabled(folderName string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.byName[folderName]
	if !ok {
		return errors.Newf(errors.ErrPackNotFound, "no package named %s", folderName)
	}
	if e.Enabled == enabled {
		return nil
	}
	e.Enabled = enabled
	m.emit(Event{Kind: EventToggled, FolderName: folderName})
	return nil
}

// MoveEntry removes the entry from its current position and reinserts
// it at targetIndex, clamped to the valid range. Sort orders are
// re-derived densely afterwards and a conflict recompute is scheduled.
func (m *Manager) MoveEntry(folderName string, targetIndex int) error {
	m.mu.Lock()

	e, ok := m.byName[folderName]
	if !ok {
		m.mu.Unlock()
		return errors.Newf(errors.ErrPackNotFound, "no package named %s", folderName)
	}
	if !e.Category.Reorderable() {
		m.mu.Unlock()
		return errors.Newf(errors.ErrNotReorderable, "%s belongs to the unrecognized group and cannot be moved", folderName)
	}

	from := e.SortOrder
	if targetIndex < 0 {
		targetIndex = 0
	}
	if max := len(m.entries) - 1; targetIndex > max {
		targetIndex = max
	}
	if targetIndex == from {
		m.mu.Unlock()
		return nil
	}

	m.entries = append(m.entries[:from], m.entries[from+1:]...)
	m.entries = append(m.entries[:targetIndex], append([]*types.Entry{e}, m.entries[targetIndex:]...)...)
	m.renumber()
	m.emit(Event{Kind: EventMoved, FolderName: folderName})
	m.mu.Unlock()

	m.scheduleRecompute()
	return nil
}

// MoveUp steps the entry one position towards the front of the load
// order. When the neighbor above belongs to a different category the
// move is realized as a category change into that category instead of
// an order swap, keeping category and order reconciled in one action.
func (m *Manager) MoveUp(ctx context.Context, folderName string) error {
	return m.step(ctx, folderName, -1)
}

// MoveDown steps the entry one position towards the back of the load
// order, with the same cross-category behavior as MoveUp.
func (m *Manager) MoveDown(ctx context.Context, folderName string) error {
	return m.step(ctx, folderName, +1)
}

func (m *Manager) step(ctx context.Context, folderName string, dir int) error {
	m.mu.Lock()

	e, ok := m.byName[folderName]
	if !ok {
		m.mu.Unlock()
		return errors.Newf(errors.ErrPackNotFound, "no package named %s", folderName)
	}

	i := e.SortOrder
	j := i + dir
	if j < 0 || j >= len(m.entries) {
		// already at the edge
		m.mu.Unlock()
		return nil
	}
	neighbor := m.entries[j]

	if !e.Category.Reorderable() || !neighbor.Category.Reorderable() {
		m.mu.Unlock()
		return errors.Newf(errors.ErrNotReorderable, "cannot move %s across the unrecognized group", folderName)
	}

	if neighbor.Category != e.Category {
		target := neighbor.Category
		m.mu.Unlock()
		return m.UpdateCategory(ctx, folderName, target)
	}

	m.entries[i], m.entries[j] = m.entries[j], m.entries[i]
	m.renumber()
	m.emit(Event{Kind: EventMoved, FolderName: folderName})
	m.mu.Unlock()

	m.scheduleRecompute()
	return nil
}

// UpdateCategory changes an entry's category. The local state is
// updated optimistically and rolled back if the backend write fails.
func (m *Manager) UpdateCategory(ctx context.Context, folderName string, category types.Category) error {
	if !category.Valid() || category == types.CategoryUnrecognized {
		return errors.Newf(errors.ErrCategoryInvalid, "invalid target category %q", category)
	}

	m.mu.Lock()
	e, ok := m.byName[folderName]
	if !ok {
		m.mu.Unlock()
		return errors.Newf(errors.ErrPackNotFound, "no package named %s", folderName)
	}
	if e.Category == types.CategoryUnrecognized {
		m.mu.Unlock()
		return errors.Newf(errors.ErrNotReorderable, "%s is unrecognized and cannot be recategorized", folderName)
	}
	if e.Category == category {
		m.mu.Unlock()
		return nil
	}

	previous := e.Category
	e.Category = category
	m.emit(Event{Kind: EventCategorized, FolderName: folderName})
	m.mu.Unlock()

	if err := m.backend.UpdateCategory(ctx, folderName, category); err != nil {
		m.mu.Lock()
		if cur, ok := m.byName[folderName]; ok {
			cur.Category = previous
			m.emit(Event{Kind: EventCategorized, FolderName: folderName})
		}
		m.mu.Unlock()
		m.logger.Error().Err(err).Str("folderName", folderName).Msg("Category update rolled back")
		return errors.Wrapf(err, errors.ErrCategoryWrite, "failed to persist category for %s", folderName)
	}

	m.scheduleRecompute()
	return nil
}

// Reorder bulk-replaces the load order, typically after a drag-and-drop
// gesture completes. newOrder must be a permutation of the current
// folder names in which every unrecognized entry keeps its position.
// Conflicts are recomputed synchronously before Reorder returns.
func (m *Manager) Reorder(newOrder []string) error {
	m.mu.Lock()

	if len(newOrder) != len(m.entries) {
		m.mu.Unlock()
		return errors.Newf(errors.ErrBadReorder, "reorder has %d entries, index has %d", len(newOrder), len(m.entries))
	}

	next := make([]*types.Entry, len(newOrder))
	seen := make(map[string]bool, len(newOrder))
	for i, name := range newOrder {
		e, ok := m.byName[name]
		if !ok {
			m.mu.Unlock()
			return errors.Newf(errors.ErrBadReorder, "reorder references unknown package %s", name)
		}
		if seen[name] {
			m.mu.Unlock()
			return errors.Newf(errors.ErrBadReorder, "reorder lists %s twice", name)
		}
		seen[name] = true
		if e.Category == types.CategoryUnrecognized && e.SortOrder != i {
			m.mu.Unlock()
			return errors.Newf(errors.ErrNotReorderable, "reorder would move unrecognized package %s", name)
		}
		next[i] = e
	}

	m.entries = next
	m.renumber()
	m.emit(Event{Kind: EventMoved})
	m.mu.Unlock()

	m.RecomputeNow()
	return nil
}

// MoveAcrossCategory recategorizes an entry and reinserts it at
// targetIndex in one gesture, the way a drag into another category
// group behaves. Only the moved entry changes category. The order
// change is skipped entirely when the backend rejects the category
// write.
func (m *Manager) MoveAcrossCategory(ctx context.Context, folderName string, category types.Category, targetIndex int) error {
	if err := m.UpdateCategory(ctx, folderName, category); err != nil {
		return err
	}
	if err := m.MoveEntry(folderName, targetIndex); err != nil {
		return err
	}
	m.RecomputeNow()
	return nil
}

// Delete removes a package through the backend and, on success, drops
// it from both the live entries and the snapshot, renumbering both
// densely. Deleting an already-synced entry therefore never shows up
// as a pending local edit. Backend errors propagate with their code
// intact.
func (m *Manager) Delete(ctx context.Context, folderName string) error {
	m.mu.Lock()
	e, ok := m.byName[folderName]
	if !ok {
		m.mu.Unlock()
		return errors.Newf(errors.ErrPackNotFound, "no package named %s", folderName)
	}
	idx := e.SortOrder
	m.mu.Unlock()

	if err := m.backend.DeleteEntry(ctx, folderName); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	delete(m.byName, folderName)
	m.renumber()

	// Renumber the snapshot the same way so dirty-comparison stays
	// valid: preserve its relative order, reassign 0..n-1.
	delete(m.snapshot, folderName)
	m.renumberSnapshot()

	m.recomputeLocked()
	m.emit(Event{Kind: EventDeleted, FolderName: folderName})

	m.logger.Info().Str("folderName", folderName).Msg("Package deleted")
	return nil
}

func (m *Manager) renumberSnapshot() {
	names := make([]string, 0, len(m.snapshot))
	for name := range m.snapshot {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return m.snapshot[names[i]].sortOrder < m.snapshot[names[j]].sortOrder
	})
	for i, name := range names {
		s := m.snapshot[name]
		s.sortOrder = i
		m.snapshot[name] = s
	}
}
