// Package engine owns the canonical in-memory load order of scenery
// packages and reconciles local edits against the backend's ground
// truth. All structural mutation goes through the Manager; the entries
// collection and the snapshot are never handed out by reference.
package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skysort/sceneryctl/pkg/conflicts"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// State describes the reconciliation state of the loaded index.
type State string

const (
	// StateClean means entries match the snapshot and the backend
	// reports no drift.
	StateClean State = "clean"

	// StateLocallyDirty means local edits have not been applied yet.
	StateLocallyDirty State = "locally_dirty"

	// StateDrifted means the backend reported that the on-disk order
	// no longer matches the last-synced index.
	StateDrifted State = "drifted"
)

// EventKind identifies the structural change behind a notification.
type EventKind string

const (
	EventLoaded      EventKind = "loaded"
	EventToggled     EventKind = "toggled"
	EventMoved       EventKind = "moved"
	EventCategorized EventKind = "categorized"
	EventDeleted     EventKind = "deleted"
	EventApplied     EventKind = "applied"
	EventReset       EventKind = "reset"
	EventConflicts   EventKind = "conflicts"
)

// Event is emitted to observers after each structural operation.
type Event struct {
	Kind       EventKind
	FolderName string
}

// snapEntry is the per-entry portion of the snapshot used for
// dirty-comparison and reset.
type snapEntry struct {
	enabled   bool
	sortOrder int
}

// Manager is the load-order and conflict-resolution engine.
//
// The caller drives it sequentially; the only internal goroutine is
// the debounced recompute timer, which the mutex covers. Backend calls
// are the only suspension points and run outside the lock.
type Manager struct {
	mu       sync.Mutex
	backend  types.Backend
	resolver *conflicts.Resolver
	sched    conflicts.Scheduler
	logger   zerolog.Logger

	// entries holds the canonical order; SortOrder always equals the
	// slice index between operations.
	entries []*types.Entry
	byName  map[string]*types.Entry

	tiles    types.OverlapGraph
	airports types.OverlapGraph

	snapshot  map[string]snapEntry
	needsSync bool
	applying  bool

	observers []func(Event)
}

// New creates a Manager. The scheduler controls conflict recompute
// timing; pass conflicts.Immediate{} for fully synchronous behavior.
func New(backend types.Backend, resolver *conflicts.Resolver, sched conflicts.Scheduler) *Manager {
	if sched == nil {
		sched = conflicts.Immediate{}
	}
	return &Manager{
		backend:  backend,
		resolver: resolver,
		sched:    sched,
		logger:   logging.GetLogger("engine"),
		byName:   make(map[string]*types.Entry),
		snapshot: make(map[string]snapEntry),
	}
}

// OnChange registers an observer invoked after each structural
// operation. Observers run synchronously under the engine lock and
// must not call back into the Manager.
func (m *Manager) OnChange(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) emit(ev Event) {
	for _, fn := range m.observers {
		fn(ev)
	}
}

// Load replaces all state from the backend index: entries, overlap
// graphs, drift flag, and a fresh snapshot. Conflicts are recomputed
// synchronously before Load returns.
func (m *Manager) Load(ctx context.Context) error {
	idx, err := m.backend.LoadIndex(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrIndexLoad, "failed to load scenery index")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make([]*types.Entry, len(idx.Entries))
	copy(m.entries, idx.Entries)
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].SortOrder < m.entries[j].SortOrder
	})
	m.renumber()

	m.byName = make(map[string]*types.Entry, len(m.entries))
	for _, e := range m.entries {
		m.byName[e.FolderName] = e
	}

	m.tiles = idx.TileOverlaps
	m.airports = idx.AirportOverlaps
	m.needsSync = idx.NeedsSync
	m.snapshot = m.takeSnapshot()

	m.resolver.Recompute(m.entries, m.tiles, m.airports)

	m.logger.Info().
		Int("entries", len(m.entries)).
		Bool("needsSync", m.needsSync).
		Msg("Index loaded")
	m.emit(Event{Kind: EventLoaded})
	return nil
}

// renumber reassigns dense 0-based sort orders following the current
// slice order. Callers hold the lock.
func (m *Manager) renumber() {
	for i, e := range m.entries {
		e.SortOrder = i
	}
}

// takeSnapshot deep-copies the dirty-relevant fields of every entry.
// Callers hold the lock.
func (m *Manager) takeSnapshot() map[string]snapEntry {
	snap := make(map[string]snapEntry, len(m.entries))
	for _, e := range m.entries {
		snap[e.FolderName] = snapEntry{enabled: e.Enabled, sortOrder: e.SortOrder}
	}
	return snap
}

// Entries returns a deep copy of all entries in load order.
func (m *Manager) Entries() []types.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = *e.Clone()
	}
	return out
}

// Get returns a copy of one entry by folder name.
func (m *Manager) Get(folderName string) (types.Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.byName[folderName]
	if !ok {
		return types.Entry{}, false
	}
	return *e.Clone(), true
}

// Len returns the number of loaded entries.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// FolderNames returns all folder names in load order.
func (m *Manager) FolderNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.FolderName
	}
	return names
}

// scheduleRecompute requests a (possibly debounced) conflict
// recompute. Must be called without the lock held: an immediate
// scheduler runs the recompute inline.
func (m *Manager) scheduleRecompute() {
	m.sched.Schedule(m.recompute)
}

// recompute runs the resolver and notifies observers when anything
// changed. Safe to call from the scheduler's timer goroutine.
func (m *Manager) recompute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeLocked()
}

func (m *Manager) recomputeLocked() {
	if m.resolver.Recompute(m.entries, m.tiles, m.airports) {
		m.emit(Event{Kind: EventConflicts})
	}
}

// RecomputeNow flushes any pending debounced recompute and recomputes
// synchronously. Callers use it at mutation-batch boundaries so the
// next read observes up-to-date conflict sets.
func (m *Manager) RecomputeNow() {
	m.sched.Stop()
	m.recompute()
}
