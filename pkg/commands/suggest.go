package commands

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/skysort/sceneryctl/pkg/errors"
)

// suggestionCutoff is the maximum edit distance still worth offering.
const suggestionCutoff = 5

// unknownPack builds the not-found error for a pack name, attaching a
// "did you mean" suggestion when a close match exists.
func unknownPack(s *Session, name string) error {
	err := errors.Newf(errors.ErrPackNotFound, "scenery pack %q not found", name)
	if suggestion := closestPack(s.Engine.FolderNames(), name); suggestion != "" {
		err = err.WithDetail("suggestion", suggestion)
	}
	return err
}

// closestPack returns the known name nearest to input, or "" when
// nothing is close enough to be a plausible typo.
func closestPack(known []string, input string) string {
	best := ""
	bestDist := suggestionCutoff + 1
	lower := strings.ToLower(input)
	for _, name := range known {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(name))
		if d < bestDist {
			best = name
			bestDist = d
		}
	}
	if bestDist > suggestionCutoff {
		return ""
	}
	return best
}
