package commands

import (
	"context"

	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// Status reports the engine state and the full entry list.
func Status(ctx context.Context, s *Session) (*Result, error) {
	logger := logging.GetLogger("commands.status")
	res := s.result(CommandStatus, nil)
	logger.Debug().
		Str("state", string(res.State)).
		Int("entries", len(res.Entries)).
		Msg("Status computed")
	return res, nil
}

// List returns the entries in load order.
func List(ctx context.Context, s *Session) (*Result, error) {
	return s.result(CommandList, nil), nil
}

// Conflicts forces a synchronous recompute and returns only the
// entries that currently carry conflict flags. With pack names given,
// the report is narrowed to those packs.
func Conflicts(ctx context.Context, s *Session, packNames []string) (*Result, error) {
	s.Engine.RecomputeNow()

	for _, name := range packNames {
		if _, ok := s.Engine.Get(name); !ok {
			return nil, unknownPack(s, name)
		}
	}

	wanted := make(map[string]bool, len(packNames))
	for _, name := range packNames {
		wanted[name] = true
	}

	res := s.result(CommandConflicts, nil)
	flagged := make([]types.Entry, 0)
	for _, e := range res.Entries {
		if !e.HasConflicts() {
			continue
		}
		if len(wanted) > 0 && !wanted[e.FolderName] {
			continue
		}
		flagged = append(flagged, e)
	}
	res.Entries = flagged
	return res, nil
}
