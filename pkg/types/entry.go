package types

import (
	"slices"

	"github.com/skysort/sceneryctl/pkg/errors"
)

// Entry represents a single scenery package in the load order.
//
// FolderName is the unique key. SortOrder is the entry's position in the
// global load order; committed states always hold a dense 0..n-1
// permutation across all entries regardless of category.
type Entry struct {
	// FolderName is the package directory name, unique across the index
	FolderName string

	// Category is the display partition this entry belongs to
	Category Category

	// Enabled mirrors whether the package is active in scenery_packs.ini
	Enabled bool

	// SortOrder is the position in the global load order
	SortOrder int

	// Continent is the detected continent code, empty when unknown
	Continent string

	// MissingLibraries lists library packages this entry references but
	// which are not installed
	MissingLibraries []string

	// DuplicateTiles and DuplicateAirports are derived conflict sets,
	// recomputed from the overlap graphs whenever the order changes.
	// They are never persisted.
	DuplicateTiles    []string
	DuplicateAirports []string
}

// NewEntry validates and constructs an Entry.
func NewEntry(folderName string, category Category, enabled bool, sortOrder int) (*Entry, error) {
	if folderName == "" {
		return nil, errors.New(errors.ErrInvalidInput, "entry folder name must not be empty")
	}
	if sortOrder < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "entry %s has negative sort order %d", folderName, sortOrder)
	}
	if !category.Valid() {
		category = CategoryUnrecognized
	}
	return &Entry{
		FolderName: folderName,
		Category:   category,
		Enabled:    enabled,
		SortOrder:  sortOrder,
	}, nil
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.MissingLibraries = slices.Clone(e.MissingLibraries)
	c.DuplicateTiles = slices.Clone(e.DuplicateTiles)
	c.DuplicateAirports = slices.Clone(e.DuplicateAirports)
	return &c
}

// HasConflicts reports whether any derived conflict set is non-empty.
func (e *Entry) HasConflicts() bool {
	return len(e.DuplicateTiles) > 0 || len(e.DuplicateAirports) > 0
}

// AutoGenPredicate reports whether a folder name denotes an auto-generated
// exclusion package. The naming convention is backend-owned, so the check
// is injected from configuration rather than hard-coded at call sites.
type AutoGenPredicate func(folderName string) bool
