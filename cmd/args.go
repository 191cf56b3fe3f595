package cmd

import (
	"math"
	"strconv"
	"strings"
)

// maxWarningsFlagName is the flag that sets the outdated threshold.
const maxWarningsFlagName = "max-warnings"

// maxWarningsValue is a lenient pflag.Value for --max-warnings.
//
// A value that is not a non-negative whole number is ignored rather than
// rejected, so "--max-warnings abc" behaves exactly like an absent flag and
// leads to the usage message. Repeated flags override earlier valid values.
//
// Fields:
//   - value: Last accepted threshold
//   - set: Whether any value was accepted
//   - ignored: Raw values that were not accepted, for verbose logging
type maxWarningsValue struct {
	value   int
	set     bool
	ignored []string
}

// String implements pflag.Value.
func (v *maxWarningsValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.value)
}

// Set implements pflag.Value. It never fails.
//
// Accepted forms are anything strconv.ParseFloat reads as a finite,
// non-negative whole number ("3", " 3 ", "3.0", "1e2"). Values above
// math.MaxInt32 are clamped.
//
// Parameters:
//   - raw: The flag argument as given on the command line
//
// Returns:
//   - error: Always nil
func (v *maxWarningsValue) Set(raw string) error {
	n, ok := parseMaxWarnings(raw)
	if !ok {
		v.ignored = append(v.ignored, raw)
		return nil
	}
	v.value = n
	v.set = true
	return nil
}

// Type implements pflag.Value.
func (v *maxWarningsValue) Type() string {
	return "number"
}

// reset clears the value before a new parse.
func (v *maxWarningsValue) reset() {
	*v = maxWarningsValue{}
}

// parseMaxWarnings converts a raw flag value to a threshold.
//
// Parameters:
//   - raw: The flag argument
//
// Returns:
//   - int: The threshold
//   - bool: false if raw is not a finite, non-negative whole number
func parseMaxWarnings(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(f), true
}

// ignorePreReleasesFlagName is the flag that enables the pre-release filter.
const ignorePreReleasesFlagName = "ignore-pre-releases"

// preReleaseValue is a lenient boolean pflag.Value for --ignore-pre-releases.
//
// The bare flag turns the filter on. An explicit value strconv.ParseBool
// cannot read ("--ignore-pre-releases=maybe") is ignored like an unknown
// argument and leaves the filter off.
//
// Fields:
//   - enabled: Whether the filter is on
//   - ignored: Raw values that were not accepted, for verbose logging
type preReleaseValue struct {
	enabled bool
	ignored []string
}

// String implements pflag.Value.
func (v *preReleaseValue) String() string {
	return strconv.FormatBool(v.enabled)
}

// Set implements pflag.Value. It never fails.
func (v *preReleaseValue) Set(raw string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		v.ignored = append(v.ignored, raw)
		return nil
	}
	v.enabled = b
	return nil
}

// Type implements pflag.Value. "bool" keeps the help output free of a value placeholder.
func (v *preReleaseValue) Type() string {
	return "bool"
}

// reset clears the value before a new parse.
func (v *preReleaseValue) reset() {
	*v = preReleaseValue{}
}
