package commands

import (
	"context"

	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/types"
)

// CommandType identifies which verb a dispatch request carries.
type CommandType string

const (
	CommandStatus    CommandType = "status"
	CommandList      CommandType = "list"
	CommandOn        CommandType = "on"
	CommandOff       CommandType = "off"
	CommandMove      CommandType = "move"
	CommandUp        CommandType = "up"
	CommandDown      CommandType = "down"
	CommandCategory  CommandType = "category"
	CommandRemove    CommandType = "rm"
	CommandApply     CommandType = "apply"
	CommandReset     CommandType = "reset"
	CommandConflicts CommandType = "conflicts"
)

// DispatchOptions carries everything a verb might need. Verbs read
// only the fields relevant to them.
type DispatchOptions struct {
	Command CommandType

	// PackNames are the positional pack arguments, already shell-split.
	PackNames []string

	// Position is the target order for move.
	Position int

	// Category is the target category for the category verb.
	Category string

	// Steps is how many single-step moves up/down perform.
	Steps int
}

// Result is the uniform outcome every verb returns. Renderers decide
// what to show from the populated fields.
type Result struct {
	Command    CommandType
	State      engine.State
	HasChanges bool

	// Entries is the post-command view of the live set, populated by
	// query verbs and by mutations so callers can re-render.
	Entries []types.Entry

	// Changed names the packs the verb touched, in argument order.
	Changed []string

	// Message is an optional human summary set by transaction verbs.
	Message string
}

// Dispatch routes a verb to its implementation. All verbs share the
// session's engine; the switch is the single seam the CLI and TUI both
// call through.
func Dispatch(ctx context.Context, s *Session, opts DispatchOptions) (*Result, error) {
	switch opts.Command {
	case CommandStatus:
		return Status(ctx, s)
	case CommandList:
		return List(ctx, s)
	case CommandConflicts:
		return Conflicts(ctx, s, opts.PackNames)
	case CommandOn:
		return SetEnabled(ctx, s, opts.PackNames, true)
	case CommandOff:
		return SetEnabled(ctx, s, opts.PackNames, false)
	case CommandMove:
		return Move(ctx, s, opts.PackNames, opts.Position)
	case CommandUp:
		return Step(ctx, s, opts.PackNames, -1, opts.Steps)
	case CommandDown:
		return Step(ctx, s, opts.PackNames, 1, opts.Steps)
	case CommandCategory:
		return Categorize(ctx, s, opts.PackNames, opts.Category)
	case CommandRemove:
		return Remove(ctx, s, opts.PackNames)
	case CommandApply:
		return Apply(ctx, s)
	case CommandReset:
		return Reset(ctx, s)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown command %q", opts.Command)
	}
}

func (s *Session) result(cmd CommandType, changed []string) *Result {
	return &Result{
		Command:    cmd,
		State:      s.Engine.CurrentState(),
		HasChanges: s.Engine.HasChanges(),
		Entries:    s.Engine.Entries(),
		Changed:    changed,
	}
}
