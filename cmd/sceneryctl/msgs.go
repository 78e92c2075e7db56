package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A load-order manager for X-Plane scenery packs"
	MsgRootLong  = `sceneryctl manages the load order of X-Plane scenery packages. It keeps
a local working copy of the order, flags packs whose tiles or airports
collide with packs loading above them, and pushes the result back to the
scenery index in one transaction.`
	MsgStatusShort    = "Show sync state and the current load order"
	MsgListShort      = "List all scenery packs in load order"
	MsgOnShort        = "Enable scenery pack(s)"
	MsgOffShort       = "Disable scenery pack(s)"
	MsgMoveShort      = "Move a pack to an absolute position"
	MsgUpShort        = "Move a pack up in the load order"
	MsgDownShort      = "Move a pack down in the load order"
	MsgCategoryShort  = "Assign pack(s) to a category"
	MsgRmShort        = "Delete scenery pack(s)"
	MsgApplyShort     = "Push local order changes to the scenery index"
	MsgResetShort     = "Discard local changes and restore the synced order"
	MsgConflictsShort = "List packs with tile or airport conflicts"
	MsgEditShort      = "Open the interactive order editor"
	MsgGenconfigShort = "Write a starter config.toml with all defaults"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgToggledOn     = "Enabled %d pack(s). Run 'sceneryctl apply' to sync.\n"
	MsgToggledOff    = "Disabled %d pack(s). Run 'sceneryctl apply' to sync.\n"
	MsgMoved         = "Moved '%s'. Run 'sceneryctl apply' to sync.\n"
	MsgRecategorized = "Assigned %d pack(s) to %s.\n"
	MsgRemoved       = "Deleted %d pack(s).\n"
	MsgNoConflicts   = "No conflicts.\n"
	MsgConfigWritten = "Wrote starter config to %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagSteps    = "Number of positions to move"
	MsgFlagCheck    = "Check for a newer release"
	MsgFlagCategory = "Only list packs in this category"
	MsgFlagDisabled = "Only list disabled packs"
)

// Long messages with examples
const (
	MsgOnLong = `Enable one or more scenery packs in the local working order.

The change is local until 'sceneryctl apply' pushes it to the scenery
index, so several packs can be toggled and reordered before syncing.`

	MsgUpLong = `Move a pack one position up (earlier, higher priority) in the load
order. Moving past the top of the pack's category assigns the pack to
the category above instead of swapping; that category change is saved
immediately.`

	MsgDownLong = `Move a pack one position down (later, lower priority) in the load
order. Moving past the bottom of the pack's category assigns the pack
to the category below instead of swapping; that category change is
saved immediately.`

	MsgCategoryLong = `Assign packs to a category. Category changes are written to the
scenery index immediately, unlike order and enable changes which wait
for 'sceneryctl apply'. The unrecognized category cannot be a target.`

	MsgApplyLong = `Push the local order and enable flags to the scenery index in one
transaction. On success the local working copy becomes the new synced
baseline. On failure nothing changes locally and apply can be retried.`

	MsgConflictsLong = `List packs whose tiles or airports collide with a pack loading above
them. Auto-generated overlay packs are exempt; see
'sceneryctl topics conflicts' for the exact rules.`

	MsgExampleOn = `  # Enable a single pack
  sceneryctl on "KSEA Demo Area"

  # Enable several packs at once
  sceneryctl on "KSEA Demo Area" "LOWI - Innsbruck"`

	MsgExampleMove = `  # Make a pack load first
  sceneryctl move "KSEA Demo Area" 0

  # Step a pack two positions down
  sceneryctl down "KSEA Demo Area" --steps 2`
)
