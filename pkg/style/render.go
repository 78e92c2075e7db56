package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/types"
)

// RenderEntryTable renders entries as a load-order table grouped by
// category headers.
func RenderEntryTable(entries []types.Entry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("No scenery packages found")
	}

	var b strings.Builder
	var current types.Category
	first := true

	rows := pterm.TableData{}
	flush := func() {
		if len(rows) == 0 {
			return
		}
		table, err := pterm.DefaultTable.WithData(rows).Srender()
		if err == nil {
			b.WriteString(table + "\n")
		}
		rows = pterm.TableData{}
	}

	for _, e := range entries {
		if first || e.Category != current {
			flush()
			if !first {
				b.WriteString("\n")
			}
			b.WriteString(CategoryStyle.Render(e.Category.DisplayName()) + "\n")
			current = e.Category
			first = false
		}
		rows = append(rows, entryRow(e))
	}
	flush()

	return strings.TrimRight(b.String(), "\n")
}

func entryRow(e types.Entry) []string {
	name := e.FolderName
	if !e.Enabled {
		name = DisabledStyle.Render(name)
	}

	marker := " "
	if e.HasConflicts() {
		marker = ConflictStyle.Render("!")
	}

	notes := []string{}
	if n := len(e.DuplicateTiles); n > 0 {
		notes = append(notes, fmt.Sprintf("%d tile", n))
	}
	if n := len(e.DuplicateAirports); n > 0 {
		notes = append(notes, fmt.Sprintf("%d airport", n))
	}
	if n := len(e.MissingLibraries); n > 0 {
		notes = append(notes, WarningStyle.Render(fmt.Sprintf("%d missing lib", n)))
	}

	return []string{
		fmt.Sprintf("%3d", e.SortOrder),
		marker,
		name,
		e.Continent,
		strings.Join(notes, ", "),
	}
}

// RenderSummary renders the one-line status digest: totals, enabled
// count, conflict count and per-category breakdown.
func RenderSummary(entries []types.Entry) string {
	enabled := 0
	conflicted := 0
	perCategory := make(map[types.Category]int)
	for _, e := range entries {
		if e.Enabled {
			enabled++
		}
		if e.HasConflicts() {
			conflicted++
		}
		perCategory[e.Category]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d packages, %d enabled", len(entries), enabled)
	if conflicted > 0 {
		b.WriteString(", " + ConflictStyle.Render(fmt.Sprintf("%d conflicted", conflicted)))
	}
	b.WriteString("\n")

	parts := []string{}
	for _, c := range types.CategoryOrder {
		if n := perCategory[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", c.DisplayName(), n))
		}
	}
	b.WriteString(MutedStyle.Render(strings.Join(parts, " · ")))
	return b.String()
}

// RenderState renders the reconciliation state banner.
func RenderState(state engine.State) string {
	switch state {
	case engine.StateClean:
		return SuccessStyle.Render("✓ in sync")
	case engine.StateLocallyDirty:
		return WarningStyle.Render("● local edits pending apply")
	case engine.StateDrifted:
		return ErrorStyle.Render("▲ scenery_packs.ini changed outside sceneryctl")
	default:
		return MutedStyle.Render(string(state))
	}
}

// RenderConflicts renders the conflict report for a set of entries.
// Entries without conflicts are skipped.
func RenderConflicts(entries []types.Entry) string {
	var b strings.Builder
	found := 0

	for _, e := range entries {
		if !e.HasConflicts() {
			continue
		}
		found++
		b.WriteString(SubtitleStyle.Render(e.FolderName) + "\n")
		if len(e.DuplicateTiles) > 0 {
			b.WriteString(Indent(ConflictStyle.Render("tiles:")+" "+strings.Join(e.DuplicateTiles, ", "), 1) + "\n")
		}
		if len(e.DuplicateAirports) > 0 {
			b.WriteString(Indent(ConflictStyle.Render("airports:")+" "+strings.Join(e.DuplicateAirports, ", "), 1) + "\n")
		}
	}

	if found == 0 {
		return SuccessStyle.Render("No active conflicts")
	}
	header := TitleStyle.Render(fmt.Sprintf("%d package(s) with active conflicts", found))
	return header + "\n" + strings.TrimRight(b.String(), "\n")
}

// RenderError renders an error with its machine-readable code when it
// has one, so scripted callers can still grep for codes.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsStructured(err) {
		return ErrorStyle.Render(fmt.Sprintf("error[%s]", errors.GetErrorCode(err))) + " " + err.Error()
	}
	return ErrorStyle.Render("error") + " " + err.Error()
}
