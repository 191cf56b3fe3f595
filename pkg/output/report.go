package output

import (
	"fmt"
	"io"

	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/utils"
)

// MissingVersion is shown in the CURRENT column for dependencies that are
// declared but not installed.
const MissingVersion = "MISSING"

// maxLocationWidth caps the LOCATION column so deep workspace paths do not
// push the table off the terminal.
const maxLocationWidth = 48

// WriteDependencyTable prints the outdated dependencies as an aligned table.
//
// It performs the following operations:
//   - Step 1: Builds columns NAME, CURRENT, WANTED, LATEST, BUMP and LOCATION
//   - Step 2: Hides LOCATION when no dependency reports one
//   - Step 3: Sizes every column to its widest cell and prints the rows in input order
//
// Nothing is written for an empty list.
//
// Parameters:
//   - w: Destination writer
//   - deps: Dependencies to print, already ordered
func WriteDependencyTable(w io.Writer, deps []report.Dependency) {
	if len(deps) == 0 {
		return
	}

	locations := make([]string, len(deps))
	rows := make([][]string, len(deps))
	for i, dep := range deps {
		locations[i] = dep.Location
		rows[i] = dependencyRow(dep)
	}

	table := NewTable().
		AddColumn("NAME").
		AddColumn("CURRENT").
		AddColumn("WANTED").
		AddColumn("LATEST").
		AddColumn("BUMP").
		AddConditionalColumn("LOCATION", HasValues(locations))

	for _, row := range rows {
		table.UpdateWidths(row...)
	}

	table.Fprint(w)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}
}

// dependencyRow renders one dependency as table cells.
func dependencyRow(dep report.Dependency) []string {
	current := dep.Current
	if current == "" {
		current = MissingVersion
	}
	return []string{
		dep.Name,
		current,
		dep.Wanted,
		dep.Latest,
		utils.BumpKind(dep.Current, dep.Latest),
		utils.Truncate(dep.Location, maxLocationWidth),
	}
}
