// Package output formats the dependency table printed when the threshold
// is exceeded.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/assert-outdated/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - hidden: Whether this column should be excluded from output
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table provides a table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: List of columns with their headers, widths, and visibility state
//   - separator: String used to separate columns in formatted output (default: "  ")
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// Returns:
//   - *Table: A new table instance with a two-space separator
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is set to the display width of the header.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	return t.AddConditionalColumn(header, true)
}

// AddConditionalColumn adds a column with configurable visibility and returns the table.
//
// Used for columns that only carry information when some row has a value,
// such as LOCATION on package managers that do not report one.
//
// Parameters:
//   - header: The text to display in the column header
//   - visible: Whether the column should be visible
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// UpdateWidths updates column widths based on a row of values and returns the table.
//
// It performs the following operations:
//   - Step 1: Calculates display width for each value using Unicode-aware measurement
//   - Step 2: Compares each value's width with the current column width
//   - Step 3: Keeps the larger width to ensure all content fits
//
// Parameters:
//   - values: Variable number of strings representing a data row
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := utils.DisplayWidth(val)
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// HeaderRow returns the formatted header row string.
//
// Hidden columns are excluded from the output.
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, utils.ToWidth(col.Header, col.Width))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a separator row with dashes matching column widths.
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column and returns the formatted string.
//
// Hidden columns are skipped, but their values must still be included in the
// input. Missing values are treated as empty strings. Trailing padding is
// trimmed.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if col.hidden {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts = append(parts, utils.ToWidth(val, col.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout or a buffer)
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// HasValues reports whether any value is non-blank.
//
// Conditional columns use this to stay hidden when every row would be empty.
//
// Parameters:
//   - values: Column values, may contain empty or whitespace-only strings
//
// Returns:
//   - bool: true if at least one value has non-whitespace content
func HasValues(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
