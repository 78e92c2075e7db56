package commands

import (
	"context"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/logging"
	"github.com/skysort/sceneryctl/pkg/types"
)

// Categorize assigns the named packs to a new category. Category is
// the one mutation that writes through immediately; a backend failure
// on any pack stops the loop and reports which packs did change.
func Categorize(ctx context.Context, s *Session, packNames []string, category string) (*Result, error) {
	logger := logging.GetLogger("commands.category")
	if len(packNames) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one pack name is required")
	}

	cat := types.Category(category)
	if !cat.Valid() {
		return nil, errors.Newf(errors.ErrCategoryInvalid, "unknown category %q", category)
	}

	changed := make([]string, 0, len(packNames))
	for _, name := range packNames {
		if _, ok := s.Engine.Get(name); !ok {
			return nil, unknownPack(s, name)
		}
		if err := s.Engine.UpdateCategory(ctx, name, cat); err != nil {
			if len(changed) > 0 {
				return nil, errors.Wrapf(err, errors.ErrCategoryWrite,
					"changed %d of %d packs before failing", len(changed), len(packNames))
			}
			return nil, err
		}
		changed = append(changed, name)
	}

	logger.Info().Strs("packs", changed).Str("category", string(cat)).Msg("Recategorized scenery packs")
	return s.result(CommandCategory, changed), nil
}

// Remove deletes the named packs through the backend and composes the
// removal into both the live order and the baseline.
func Remove(ctx context.Context, s *Session, packNames []string) (*Result, error) {
	logger := logging.GetLogger("commands.rm")
	if len(packNames) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one pack name is required")
	}

	changed := make([]string, 0, len(packNames))
	for _, name := range packNames {
		if _, ok := s.Engine.Get(name); !ok {
			return nil, unknownPack(s, name)
		}
		if err := s.Engine.Delete(ctx, name); err != nil {
			return nil, err
		}
		changed = append(changed, name)
	}

	logger.Info().Strs("packs", changed).Msg("Removed scenery packs")
	return s.result(CommandRemove, changed), nil
}
