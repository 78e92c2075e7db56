package commands_test

// TEST TYPE: Business Logic
// DEPENDENCIES: MockBackend
// PURPOSE: Verify verb dispatch against an in-memory backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysort/sceneryctl/pkg/commands"
	"github.com/skysort/sceneryctl/pkg/config"
	"github.com/skysort/sceneryctl/pkg/conflicts"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/testutil"
	"github.com/skysort/sceneryctl/pkg/types"
)

func newSession(t *testing.T, be types.Backend) *commands.Session {
	t.Helper()
	s, err := commands.NewSessionWith(context.Background(), config.Default(), be, conflicts.Immediate{})
	require.NoError(t, err)
	return s
}

func fixtureIndex(t *testing.T) *types.Index {
	t.Helper()
	entries := testutil.MakeEntries(t,
		testutil.EntrySpec{Name: "AlphaAirport", Category: types.CategoryAirport, Enabled: true, Order: 0},
		testutil.EntrySpec{Name: "BravoAirport", Category: types.CategoryAirport, Enabled: true, Order: 1},
		testutil.EntrySpec{Name: "CharlieMesh", Category: types.CategoryMesh, Enabled: false, Order: 2},
		testutil.EntrySpec{Name: "zz_autogen_Overlay", Category: types.CategoryOverlay, Enabled: true, Order: 3},
	)
	tiles := types.OverlapGraph{
		"AlphaAirport": {"BravoAirport"},
		"BravoAirport": {"AlphaAirport"},
	}
	return testutil.MakeIndex(entries, tiles, nil, false)
}

func dispatch(t *testing.T, s *commands.Session, opts commands.DispatchOptions) *commands.Result {
	t.Helper()
	res, err := commands.Dispatch(context.Background(), s, opts)
	require.NoError(t, err)
	return res
}

func TestStatusReportsCleanSession(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{Command: commands.CommandStatus})

	assert.Equal(t, commands.CommandStatus, res.Command)
	assert.False(t, res.HasChanges)
	assert.Len(t, res.Entries, 4)
}

func TestOnOffMarkSessionDirty(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandOn,
		PackNames: []string{"CharlieMesh"},
	})

	assert.True(t, res.HasChanges)
	assert.Equal(t, []string{"CharlieMesh"}, res.Changed)
	e, ok := s.Engine.Get("CharlieMesh")
	require.True(t, ok)
	assert.True(t, e.Enabled)

	res = dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandOff,
		PackNames: []string{"CharlieMesh"},
	})
	assert.False(t, res.HasChanges)
}

func TestToggleUnknownPackSuggestsNearestName(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	_, err := commands.Dispatch(context.Background(), s, commands.DispatchOptions{
		Command:   commands.CommandOn,
		PackNames: []string{"AlfaAirport"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackNotFound))
	var serr *errors.SceneryError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "AlphaAirport", serr.Details["suggestion"])
}

func TestMovePlacesPackAtPosition(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandMove,
		PackNames: []string{"BravoAirport"},
		Position:  0,
	})

	assert.Equal(t, "BravoAirport", res.Entries[0].FolderName)
	assert.Equal(t, "AlphaAirport", res.Entries[1].FolderName)
	assert.True(t, res.HasChanges)
}

func TestStepDownSwapsWithinCategory(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandDown,
		PackNames: []string{"AlphaAirport"},
		Steps:     1,
	})

	assert.Equal(t, "BravoAirport", res.Entries[0].FolderName)
	assert.Equal(t, "AlphaAirport", res.Entries[1].FolderName)
}

func TestCategorizeWritesThrough(t *testing.T) {
	be := testutil.NewMockBackend(fixtureIndex(t))
	s := newSession(t, be)

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandCategory,
		PackNames: []string{"CharlieMesh"},
		Category:  "overlay",
	})

	assert.Equal(t, []string{"CharlieMesh"}, res.Changed)
	assert.Equal(t, types.CategoryOverlay, be.Categories()["CharlieMesh"])
}

func TestCategorizeRejectsBadCategory(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	_, err := commands.Dispatch(context.Background(), s, commands.DispatchOptions{
		Command:   commands.CommandCategory,
		PackNames: []string{"CharlieMesh"},
		Category:  "nonsense",
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryInvalid))
}

func TestRemoveDeletesThroughBackend(t *testing.T) {
	be := testutil.NewMockBackend(fixtureIndex(t))
	s := newSession(t, be)

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandRemove,
		PackNames: []string{"BravoAirport"},
	})

	assert.Equal(t, []string{"BravoAirport"}, be.Deleted())
	assert.Len(t, res.Entries, 3)
	_, ok := s.Engine.Get("BravoAirport")
	assert.False(t, ok)
}

func TestApplyCommitsAndCleans(t *testing.T) {
	be := testutil.NewMockBackend(fixtureIndex(t))
	s := newSession(t, be)
	dispatch(t, s, commands.DispatchOptions{Command: commands.CommandOn, PackNames: []string{"CharlieMesh"}})

	res := dispatch(t, s, commands.DispatchOptions{Command: commands.CommandApply})

	assert.False(t, res.HasChanges)
	require.Len(t, be.Applied(), 1)
}

func TestApplyCleanSessionIsNoOp(t *testing.T) {
	be := testutil.NewMockBackend(fixtureIndex(t))
	s := newSession(t, be)

	res := dispatch(t, s, commands.DispatchOptions{Command: commands.CommandApply})

	assert.Equal(t, "Nothing to apply", res.Message)
	assert.Empty(t, be.Applied())
}

func TestResetDiscardsLocalEdits(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))
	dispatch(t, s, commands.DispatchOptions{Command: commands.CommandOff, PackNames: []string{"AlphaAirport"}})

	res := dispatch(t, s, commands.DispatchOptions{Command: commands.CommandReset})

	assert.False(t, res.HasChanges)
	e, _ := s.Engine.Get("AlphaAirport")
	assert.True(t, e.Enabled)
}

func TestConflictsReturnsOnlyFlaggedEntries(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{Command: commands.CommandConflicts})

	require.Len(t, res.Entries, 2)
	names := []string{res.Entries[0].FolderName, res.Entries[1].FolderName}
	assert.ElementsMatch(t, []string{"AlphaAirport", "BravoAirport"}, names)
}

func TestConflictsNarrowedToOnePack(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	res := dispatch(t, s, commands.DispatchOptions{
		Command:   commands.CommandConflicts,
		PackNames: []string{"AlphaAirport"},
	})

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "AlphaAirport", res.Entries[0].FolderName)
	assert.Equal(t, []string{"BravoAirport"}, res.Entries[0].DuplicateTiles)
}

func TestDispatchUnknownCommand(t *testing.T) {
	s := newSession(t, testutil.NewMockBackend(fixtureIndex(t)))

	_, err := commands.Dispatch(context.Background(), s, commands.DispatchOptions{Command: "bogus"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSessionLoadFailurePropagates(t *testing.T) {
	be := testutil.NewMockBackend(fixtureIndex(t))
	be.FailOn("LoadIndex", errors.New(errors.ErrBackendUnavailable, "down"))

	_, err := commands.NewSessionWith(context.Background(), config.Default(), be, conflicts.Immediate{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLoad))
}
