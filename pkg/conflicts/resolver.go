// Package conflicts turns the backend's order-independent overlap
// graphs into order-dependent conflict sets.
//
// A raw overlap says two packages cover the same geography. Whether
// that overlap matters depends on the load order and on whether one of
// the packages is an auto-generated exclusion pack:
//
//   - auto-generated entries never conflict; they exist to resolve
//     conflicts
//   - an ordinary entry conflicts with an auto-generated partner only
//     when it loads after it (higher sort order overrides the
//     exclusion)
//   - two ordinary entries always conflict with each other, in both
//     directions, regardless of order
package conflicts

import (
	"slices"
	"sort"

	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// Resolver recomputes derived conflict sets over a set of entries.
// It is a pure in-memory computation with no failure modes: a folder
// missing from the overlap graph simply has no conflicts.
type Resolver struct {
	isAutoGenerated types.AutoGenPredicate
}

// NewResolver creates a resolver with the injected auto-generated
// package predicate.
func NewResolver(isAutoGenerated types.AutoGenPredicate) *Resolver {
	if isAutoGenerated == nil {
		isAutoGenerated = func(string) bool { return false }
	}
	return &Resolver{isAutoGenerated: isAutoGenerated}
}

// Recompute refreshes DuplicateTiles and DuplicateAirports on every
// entry from the given overlap graphs and the entries' current sort
// order. A derived slice is only replaced when its contents actually
// changed, so unchanged entries keep their previous slice reference and
// downstream consumers can cheaply detect invalidation. Returns whether
// any entry changed.
//
// Recomputing twice without an intervening mutation is a no-op.
func (r *Resolver) Recompute(entries []*types.Entry, tiles, airports types.OverlapGraph) bool {
	byName := make(map[string]*types.Entry, len(entries))
	for _, e := range entries {
		byName[e.FolderName] = e
	}

	logger := logging.GetLogger("conflicts")
	changed := false
	for _, e := range entries {
		next := r.activeConflicts(e, byName, tiles)
		if !slices.Equal(e.DuplicateTiles, next) {
			e.DuplicateTiles = next
			changed = true
		}
		next = r.activeConflicts(e, byName, airports)
		if !slices.Equal(e.DuplicateAirports, next) {
			e.DuplicateAirports = next
			changed = true
		}
	}
	if changed {
		logger.Debug().Int("entries", len(entries)).Msg("Conflict sets recomputed")
	}
	return changed
}

// activeConflicts applies the ordering rule to one entry's raw overlap
// partners. The result is ordered by the partner's sort order so the
// set has a single canonical form.
func (r *Resolver) activeConflicts(e *types.Entry, byName map[string]*types.Entry, graph types.OverlapGraph) []string {
	if r.isAutoGenerated(e.FolderName) {
		return nil
	}

	var active []*types.Entry
	for _, name := range graph.Partners(e.FolderName) {
		partner, ok := byName[name]
		if !ok {
			// stale graph edge, the partner was deleted
			continue
		}
		if r.isAutoGenerated(partner.FolderName) {
			// only flagged when e overrides the exclusion pack
			if e.SortOrder > partner.SortOrder {
				active = append(active, partner)
			}
			continue
		}
		active = append(active, partner)
	}
	if len(active) == 0 {
		return nil
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})
	names := make([]string, len(active))
	for i, p := range active {
		names[i] = p.FolderName
	}
	return names
}
