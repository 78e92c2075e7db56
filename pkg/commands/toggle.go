package commands

import (
	"context"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/logging"
)

// SetEnabled turns the named packs on or off in the local working set.
// Nothing hits the backend until apply; callers see the dirty state in
// the result.
func SetEnabled(ctx context.Context, s *Session, packNames []string, enabled bool) (*Result, error) {
	logger := logging.GetLogger("commands.toggle")
	if len(packNames) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one pack name is required")
	}

	changed := make([]string, 0, len(packNames))
	for _, name := range packNames {
		if _, ok := s.Engine.Get(name); !ok {
			return nil, unknownPack(s, name)
		}
		if err := s.Engine.SetEnabled(name, enabled); err != nil {
			return nil, err
		}
		changed = append(changed, name)
	}

	logger.Info().
		Strs("packs", changed).
		Bool("enabled", enabled).
		Msg("Toggled scenery packs")

	cmd := CommandOff
	if enabled {
		cmd = CommandOn
	}
	return s.result(cmd, changed), nil
}
