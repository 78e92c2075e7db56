// pkg/engine/mutate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MockBackend
// PURPOSE: Test order/category mutations and their structural
// invariants: dense sort orders, the unrecognized sink, optimistic
// category rollback, and delete renumbering

package engine_test

import (
	"context"
	"testing"

	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/testutil"
	"github.com/skysort/sceneryctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fivePacks(t *testing.T) []*types.Entry {
	return testutil.MakeEntries(t,
		testutil.EntrySpec{Name: "Apt1", Category: types.CategoryAirport, Enabled: true, Order: 0},
		testutil.EntrySpec{Name: "Apt2", Category: types.CategoryAirport, Enabled: true, Order: 1},
		testutil.EntrySpec{Name: "Lib1", Category: types.CategoryLibrary, Enabled: true, Order: 2},
		testutil.EntrySpec{Name: "Mesh1", Category: types.CategoryMesh, Enabled: true, Order: 3},
		testutil.EntrySpec{Name: "Odd1", Category: types.CategoryUnrecognized, Enabled: true, Order: 4},
	)
}

func assertDense(t *testing.T, m *engine.Manager) {
	t.Helper()
	for i, e := range m.Entries() {
		assert.Equal(t, i, e.SortOrder, "sort order must be dense at index %d", i)
	}
}

func TestMoveEntryReindexesDensely(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	require.NoError(t, m.MoveEntry("Mesh1", 0))
	assert.Equal(t, []string{"Mesh1", "Apt1", "Apt2", "Lib1", "Odd1"}, m.FolderNames())
	assertDense(t, m)

	require.NoError(t, m.MoveEntry("Apt1", 3))
	assert.Equal(t, []string{"Mesh1", "Apt2", "Lib1", "Apt1", "Odd1"}, m.FolderNames())
	assertDense(t, m)
}

func TestMoveEntryClampsTargetIndex(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	require.NoError(t, m.MoveEntry("Apt1", 999))
	names := m.FolderNames()
	assert.Equal(t, "Apt1", names[len(names)-1])
	assertDense(t, m)

	require.NoError(t, m.MoveEntry("Apt1", -5))
	assert.Equal(t, "Apt1", m.FolderNames()[0])
	assertDense(t, m)
}

func TestMoveEntryRejectsUnknownAndUnrecognized(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	err := m.MoveEntry("Nope", 0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackNotFound))

	err = m.MoveEntry("Odd1", 0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotReorderable))
	assert.Equal(t, []string{"Apt1", "Apt2", "Lib1", "Mesh1", "Odd1"}, m.FolderNames())
}

func TestMoveUpSwapsWithinCategory(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	ctx := context.Background()

	require.NoError(t, m.MoveUp(ctx, "Apt2"))
	assert.Equal(t, []string{"Apt2", "Apt1", "Lib1", "Mesh1", "Odd1"}, m.FolderNames())
	assertDense(t, m)

	// at the top edge the move is a no-op
	require.NoError(t, m.MoveUp(ctx, "Apt2"))
	assert.Equal(t, "Apt2", m.FolderNames()[0])
}

func TestMoveAcrossCategoryBoundaryBecomesCategoryChange(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	ctx := context.Background()

	// Lib1's upward neighbor Apt2 is an airport: the step is realized
	// as a category change, not an order swap
	require.NoError(t, m.MoveUp(ctx, "Lib1"))

	lib1, _ := m.Get("Lib1")
	assert.Equal(t, types.CategoryAirport, lib1.Category)
	assert.Equal(t, []string{"Apt1", "Apt2", "Lib1", "Mesh1", "Odd1"}, m.FolderNames(),
		"order is unchanged, only the category moved")
	assert.Equal(t, types.CategoryAirport, backend.Categories()["Lib1"])
}

func TestMoveNearUnrecognizedIsRejected(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	ctx := context.Background()

	// Mesh1's downward neighbor is unrecognized
	err := m.MoveDown(ctx, "Mesh1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotReorderable))

	err = m.MoveUp(ctx, "Odd1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotReorderable))
	assert.Equal(t, []string{"Apt1", "Apt2", "Lib1", "Mesh1", "Odd1"}, m.FolderNames())
}

func TestUpdateCategoryPersistsOptimistically(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	require.NoError(t, m.UpdateCategory(context.Background(), "Lib1", types.CategoryOverlay))

	lib1, _ := m.Get("Lib1")
	assert.Equal(t, types.CategoryOverlay, lib1.Category)
	assert.Equal(t, types.CategoryOverlay, backend.Categories()["Lib1"])
}

func TestUpdateCategoryRollsBackOnBackendFailure(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	backend.FailOn("UpdateCategory", errors.New(errors.ErrCategoryWrite, "disk full"))

	err := m.UpdateCategory(context.Background(), "Lib1", types.CategoryOverlay)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryWrite))

	lib1, _ := m.Get("Lib1")
	assert.Equal(t, types.CategoryLibrary, lib1.Category, "failed write must roll back")
	assert.False(t, m.LocallyDirty(), "category is backend-owned, not a staged edit")
}

func TestUpdateCategoryRejectsUnrecognizedTargets(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	ctx := context.Background()

	err := m.UpdateCategory(ctx, "Lib1", types.CategoryUnrecognized)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryInvalid))

	err = m.UpdateCategory(ctx, "Odd1", types.CategoryAirport)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotReorderable))
}

func TestReorderBulkReplace(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	require.NoError(t, m.Reorder([]string{"Lib1", "Apt1", "Apt2", "Mesh1", "Odd1"}))
	assert.Equal(t, []string{"Lib1", "Apt1", "Apt2", "Mesh1", "Odd1"}, m.FolderNames())
	assertDense(t, m)
}

func TestReorderValidation(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	err := m.Reorder([]string{"Apt1", "Apt2"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadReorder))

	err = m.Reorder([]string{"Apt1", "Apt1", "Lib1", "Mesh1", "Odd1"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadReorder))

	err = m.Reorder([]string{"Apt1", "Apt2", "Lib1", "Nope", "Odd1"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadReorder))

	// unrecognized entries are pinned to their position
	err = m.Reorder([]string{"Odd1", "Apt1", "Apt2", "Lib1", "Mesh1"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotReorderable))

	assert.Equal(t, []string{"Apt1", "Apt2", "Lib1", "Mesh1", "Odd1"}, m.FolderNames())
}

func TestMoveAcrossCategory(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))

	require.NoError(t, m.MoveAcrossCategory(context.Background(), "Mesh1", types.CategoryAirport, 1))

	mesh1, _ := m.Get("Mesh1")
	assert.Equal(t, types.CategoryAirport, mesh1.Category)
	assert.Equal(t, []string{"Apt1", "Mesh1", "Apt2", "Lib1", "Odd1"}, m.FolderNames())
	assertDense(t, m)
	assert.Equal(t, types.CategoryAirport, backend.Categories()["Mesh1"])
}

func TestMoveAcrossCategorySkipsMoveWhenBackendRejects(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	backend.FailOn("UpdateCategory", errors.New(errors.ErrCategoryWrite, "readonly"))

	err := m.MoveAcrossCategory(context.Background(), "Mesh1", types.CategoryAirport, 1)
	require.Error(t, err)

	mesh1, _ := m.Get("Mesh1")
	assert.Equal(t, types.CategoryMesh, mesh1.Category)
	assert.Equal(t, []string{"Apt1", "Apt2", "Lib1", "Mesh1", "Odd1"}, m.FolderNames())
}

func TestDeleteRenumbersLiveAndSnapshot(t *testing.T) {
	tiles := types.OverlapGraph{"P1": {"P2"}, "P2": {"P1"}}
	entries := testutil.MakeEntries(t,
		testutil.EntrySpec{Name: "P1", Category: types.CategoryAirport, Enabled: true, Order: 0},
		testutil.EntrySpec{Name: "P2", Category: types.CategoryAirport, Enabled: true, Order: 1},
		testutil.EntrySpec{Name: "P3", Category: types.CategoryUnrecognized, Enabled: true, Order: 2},
	)
	m, backend := newManager(t, testutil.MakeIndex(entries, tiles, nil, false))

	require.NoError(t, m.Delete(context.Background(), "P2"))

	assert.Equal(t, []string{"P2"}, backend.Deleted())
	assert.Equal(t, []string{"P1", "P3"}, m.FolderNames())
	assertDense(t, m)

	// conflict sets recomputed: the stale P2 edge is gone
	p1, _ := m.Get("P1")
	assert.Empty(t, p1.DuplicateTiles)

	// the snapshot was renumbered identically, so nothing is dirty
	assert.False(t, m.LocallyDirty())
	assert.False(t, m.HasChanges())
}

func TestDeleteBackendErrorKeepsEntry(t *testing.T) {
	m, backend := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	backend.FailOn("DeleteEntry", errors.New(errors.ErrDeleteRejected, "pack directory is locked"))

	err := m.Delete(context.Background(), "Lib1")
	require.Error(t, err)
	// the structured code survives untouched for the caller to localize
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeleteRejected))

	_, ok := m.Get("Lib1")
	assert.True(t, ok)
	assert.Len(t, m.FolderNames(), 5)
	assert.False(t, m.LocallyDirty())
}

func TestMutationSequencesKeepDenseOrder(t *testing.T) {
	m, _ := newManager(t, testutil.MakeIndex(fivePacks(t), nil, nil, false))
	ctx := context.Background()

	require.NoError(t, m.MoveEntry("Apt1", 3))
	require.NoError(t, m.MoveUp(ctx, "Apt1"))
	require.NoError(t, m.Delete(ctx, "Apt2"))
	require.NoError(t, m.MoveEntry("Lib1", 0))
	require.NoError(t, m.Reorder(m.FolderNames()))

	assertDense(t, m)
	assert.Len(t, m.FolderNames(), 4)
}
