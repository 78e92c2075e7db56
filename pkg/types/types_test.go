// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test entry validation, category ordering, and cloning

package types_test

import (
	"testing"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryValidation(t *testing.T) {
	_, err := types.NewEntry("", types.CategoryAirport, true, 0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = types.NewEntry("KSEA", types.CategoryAirport, true, -1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	e, err := types.NewEntry("KSEA", types.CategoryAirport, true, 3)
	require.NoError(t, err)
	assert.Equal(t, "KSEA", e.FolderName)
	assert.Equal(t, 3, e.SortOrder)
}

func TestNewEntryMapsUnknownCategoryToUnrecognized(t *testing.T) {
	e, err := types.NewEntry("Weird", types.Category("weird_stuff"), true, 0)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryUnrecognized, e.Category)
}

func TestCategoryOrderIndex(t *testing.T) {
	assert.Equal(t, 0, types.CategoryFixedHighPriority.OrderIndex())
	assert.Equal(t, 8, types.CategoryUnrecognized.OrderIndex())
	assert.Equal(t, -1, types.Category("bogus").OrderIndex())

	// display order is strictly increasing
	prev := -1
	for _, c := range types.CategoryOrder {
		assert.Greater(t, c.OrderIndex(), prev)
		prev = c.OrderIndex()
	}
}

func TestCategoryReorderable(t *testing.T) {
	assert.True(t, types.CategoryAirport.Reorderable())
	assert.False(t, types.CategoryUnrecognized.Reorderable())
	assert.False(t, types.Category("bogus").Reorderable())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, types.CategoryMesh, types.ParseCategory("mesh"))
	assert.Equal(t, types.CategoryUnrecognized, types.ParseCategory("haunted"))
}

func TestCloneIsDeep(t *testing.T) {
	e, err := types.NewEntry("KSEA", types.CategoryAirport, true, 0)
	require.NoError(t, err)
	e.DuplicateTiles = []string{"EGLL"}

	c := e.Clone()
	c.DuplicateTiles[0] = "LFPG"
	assert.Equal(t, []string{"EGLL"}, e.DuplicateTiles)
}

func TestOverlapGraphPartners(t *testing.T) {
	var nilGraph types.OverlapGraph
	assert.Nil(t, nilGraph.Partners("anything"))

	g := types.OverlapGraph{"A": {"B"}}
	assert.Equal(t, []string{"B"}, g.Partners("A"))
	assert.Nil(t, g.Partners("C"))
}
