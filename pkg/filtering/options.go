package filtering

import "github.com/ajxudir/assert-outdated/pkg/config"

// FilterOptions contains the filter criteria for outdated dependencies.
//
// Fields:
//   - IgnorePreReleases: Drop stable-to-pre-release upgrade suggestions
type FilterOptions struct {
	IgnorePreReleases bool
}

// FromConfig builds FilterOptions from the run configuration.
//
// Parameters:
//   - cfg: The run configuration
//
// Returns:
//   - FilterOptions: Options with the filters cfg enables
func FromConfig(cfg config.Config) FilterOptions {
	return FilterOptions{IgnorePreReleases: cfg.IgnorePreReleases}
}

// IsEmpty returns true if no filter is enabled.
func (o FilterOptions) IsEmpty() bool {
	return !o.IgnorePreReleases
}
