package types

import "context"

// Backend is the collaborator that owns the filesystem side of the
// scenery installation: scanning packages, parsing and writing
// scenery_packs.ini, and computing raw tile/airport overlaps. The
// engine never touches disk itself - these four operations are its
// entire surface to the outside world.
//
// Backend write failures must be reported, never swallowed: the engine
// rolls back optimistic local state (category update) or leaves state
// untouched (apply) and propagates the error. Structured backend errors
// arrive as *errors.SceneryError with the backend's code intact.
type Backend interface {
	// LoadIndex returns the full package index, the raw overlap
	// graphs, and whether the on-disk order has drifted.
	LoadIndex(ctx context.Context) (*Index, error)

	// ApplyOrder persists enabled flags and sort order for every
	// entry in one transaction. It either fully commits or fails.
	ApplyOrder(ctx context.Context, updates []Update) error

	// UpdateCategory persists a category change for one package.
	UpdateCategory(ctx context.Context, folderName string, category Category) error

	// DeleteEntry removes a package from disk and from the index.
	DeleteEntry(ctx context.Context, folderName string) error
}
