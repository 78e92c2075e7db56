package commands

import (
	"context"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/logging"
)

// Move places one pack at an absolute position in the load order.
func Move(ctx context.Context, s *Session, packNames []string, position int) (*Result, error) {
	logger := logging.GetLogger("commands.move")
	if len(packNames) != 1 {
		return nil, errors.New(errors.ErrInvalidInput, "move takes exactly one pack name")
	}
	name := packNames[0]
	if _, ok := s.Engine.Get(name); !ok {
		return nil, unknownPack(s, name)
	}

	if err := s.Engine.MoveEntry(name, position); err != nil {
		return nil, err
	}

	logger.Info().Str("pack", name).Int("position", position).Msg("Moved scenery pack")
	return s.result(CommandMove, []string{name}), nil
}

// Step moves one pack up or down by whole positions. A step against a
// neighbor of another category becomes a category change instead of a
// swap, which may write through to the backend.
func Step(ctx context.Context, s *Session, packNames []string, dir, steps int) (*Result, error) {
	logger := logging.GetLogger("commands.step")
	if len(packNames) != 1 {
		return nil, errors.New(errors.ErrInvalidInput, "up and down take exactly one pack name")
	}
	if steps < 1 {
		steps = 1
	}
	name := packNames[0]
	if _, ok := s.Engine.Get(name); !ok {
		return nil, unknownPack(s, name)
	}

	for i := 0; i < steps; i++ {
		var err error
		if dir < 0 {
			err = s.Engine.MoveUp(ctx, name)
		} else {
			err = s.Engine.MoveDown(ctx, name)
		}
		if err != nil {
			return nil, err
		}
	}

	cmd := CommandDown
	if dir < 0 {
		cmd = CommandUp
	}
	logger.Info().Str("pack", name).Int("steps", steps).Str("direction", string(cmd)).Msg("Stepped scenery pack")
	return s.result(cmd, []string{name}), nil
}
