// Package config holds the settings of one assert-outdated run.
//
// Settings come from command-line flags only; there is no config file.
package config

import "fmt"

// UsageMessage is printed instead of running the check when no usable
// --max-warnings value was given.
const UsageMessage = "Usage: --max-warnings <Number> [--ignore-pre-releases]"

// Config is the configuration of a single run. It is built once from the
// command line and not modified afterwards.
type Config struct {
	// MaxWarnings is the largest number of outdated dependencies that still
	// passes. Must be >= 0.
	MaxWarnings int

	// IgnorePreReleases drops upgrade suggestions from a stable installed
	// version to a pre-release latest version before counting.
	IgnorePreReleases bool
}

// Validate checks the configuration.
//
// Returns:
//   - error: Returns error if MaxWarnings is negative; nil otherwise
func (c Config) Validate() error {
	if c.MaxWarnings < 0 {
		return fmt.Errorf("max-warnings must be a non-negative integer, got %d", c.MaxWarnings)
	}
	return nil
}
