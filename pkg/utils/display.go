// Package utils holds small helpers shared by the output code: terminal
// width measurement and version classification.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (CJK, emoji) occupy two terminal cells, so len() would
// misalign table columns for scoped or localized package names.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells (wide characters count as 2)
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string to a specific display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells (must be > 0 to have effect)
//
// Returns:
//   - string: The padded string, or original if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate shortens val to at most width display cells, marking the cut
// with "...".
//
// Parameters:
//   - val: The string to shorten
//   - width: Maximum display width; values below 4 disable truncation
//
// Returns:
//   - string: val, or a shortened copy ending in "..."
func Truncate(val string, width int) string {
	if width < 4 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "...")
}
