package commands

import (
	"context"
	"fmt"

	"github.com/skysort/sceneryctl/pkg/logging"
)

// Apply pushes the working order and enable flags to the backend. A
// clean session is a no-op so apply stays safe to run repeatedly.
func Apply(ctx context.Context, s *Session) (*Result, error) {
	logger := logging.GetLogger("commands.apply")

	if !s.Engine.HasChanges() {
		res := s.result(CommandApply, nil)
		res.Message = "Nothing to apply"
		return res, nil
	}

	if err := s.Engine.Apply(ctx); err != nil {
		return nil, err
	}

	logger.Info().Int("entries", s.Engine.Len()).Msg("Applied scenery order")
	res := s.result(CommandApply, nil)
	res.Message = fmt.Sprintf("Applied order for %d packs", s.Engine.Len())
	return res, nil
}

// Reset discards local edits and restores the last synced baseline.
// Server-side drift is left alone; only a reload clears it.
func Reset(ctx context.Context, s *Session) (*Result, error) {
	logger := logging.GetLogger("commands.reset")

	if !s.Engine.LocallyDirty() {
		res := s.result(CommandReset, nil)
		res.Message = "No local changes to discard"
		return res, nil
	}

	s.Engine.Reset()

	logger.Info().Msg("Reset to last synced order")
	res := s.result(CommandReset, nil)
	res.Message = "Local changes discarded"
	return res, nil
}
