package types

// OverlapGraph records which packages cover overlapping geography,
// keyed by folder name. It is produced by the backend's tile scan and
// never mutated by this engine. Whether an overlap is an *active*
// conflict depends on the current load order (see pkg/conflicts).
type OverlapGraph map[string][]string

// Partners returns the raw overlap partners for a folder. A missing
// key means "no overlaps", not an error.
func (g OverlapGraph) Partners(folderName string) []string {
	if g == nil {
		return nil
	}
	return g[folderName]
}

// Index is the backend's ground-truth view of the scenery installation,
// returned wholesale by Backend.LoadIndex.
type Index struct {
	Entries         []*Entry
	TileOverlaps    OverlapGraph
	AirportOverlaps OverlapGraph

	// NeedsSync is set when the on-disk scenery_packs.ini order no
	// longer matches the backend's authoritative index. Cleared only
	// by a successful apply.
	NeedsSync bool
}

// Update is the per-entry payload sent to the backend on apply.
type Update struct {
	FolderName string `json:"folderName"`
	Enabled    bool   `json:"enabled"`
	SortOrder  int    `json:"sortOrder"`
}
