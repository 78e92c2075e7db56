package testutil

import (
	"testing"

	"github.com/skysort/sceneryctl/pkg/types"
)

// EntrySpec is a compact description of a fixture entry.
type EntrySpec struct {
	Name     string
	Category types.Category
	Enabled  bool
	Order    int
}

// MakeEntries builds fixture entries from specs, failing the test on
// invalid input.
func MakeEntries(t *testing.T, specs ...EntrySpec) []*types.Entry {
	t.Helper()

	entries := make([]*types.Entry, len(specs))
	for i, s := range specs {
		e, err := types.NewEntry(s.Name, s.Category, s.Enabled, s.Order)
		if err != nil {
			t.Fatalf("bad fixture entry %q: %v", s.Name, err)
		}
		entries[i] = e
	}
	return entries
}

// MakeIndex wraps fixture entries in an Index with optional overlap
// graphs.
func MakeIndex(entries []*types.Entry, tiles, airports types.OverlapGraph, needsSync bool) *types.Index {
	return &types.Index{
		Entries:         entries,
		TileOverlaps:    tiles,
		AirportOverlaps: airports,
		NeedsSync:       needsSync,
	}
}
