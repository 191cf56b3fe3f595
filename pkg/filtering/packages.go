package filtering

import (
	"strings"

	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
)

// preReleaseMarker separates a version from its pre-release suffix
// ("1.1.0-beta").
const preReleaseMarker = "-"

// FilterDependencies applies every filter enabled in opts.
//
// Parameters:
//   - deps: Outdated dependencies in report order
//   - opts: Filter options
//
// Returns:
//   - []report.Dependency: Dependencies that passed all filters, in the same order
//
// Example:
//
//	filtered := filtering.FilterDependencies(deps, filtering.FromConfig(cfg))
func FilterDependencies(deps []report.Dependency, opts FilterOptions) []report.Dependency {
	if opts.IsEmpty() {
		return deps
	}
	return FilterPreReleases(deps, opts.IgnorePreReleases)
}

// FilterPreReleases drops stable-to-pre-release upgrade suggestions.
//
// When ignore is false the input is returned unchanged. Otherwise a
// dependency is kept if its current version is already a pre-release, or if
// its latest version is not one. Order is preserved, and filtering an
// already filtered list returns the same list.
//
// Parameters:
//   - deps: Outdated dependencies in report order
//   - ignore: Whether pre-release noise should be dropped
//
// Returns:
//   - []report.Dependency: The kept dependencies
func FilterPreReleases(deps []report.Dependency, ignore bool) []report.Dependency {
	if !ignore {
		return deps
	}

	filtered := make([]report.Dependency, 0, len(deps))
	for _, d := range deps {
		if isPreReleaseNoise(d) {
			verbose.PackageFiltered(d.Name, "upgrade from "+d.Current+" to pre-release "+d.Latest)
			continue
		}
		filtered = append(filtered, d)
	}

	verbose.Printf("Pre-release filter kept %d of %d dependencies", len(filtered), len(deps))
	return filtered
}

// IsPreRelease reports whether version carries a pre-release suffix.
//
// Parameters:
//   - version: Version string as reported by npm
//
// Returns:
//   - bool: true if version contains a hyphen
func IsPreRelease(version string) bool {
	return strings.Contains(version, preReleaseMarker)
}

// isPreReleaseNoise reports whether d moves from a stable version to a
// pre-release one.
func isPreReleaseNoise(d report.Dependency) bool {
	return !IsPreRelease(d.Current) && IsPreRelease(d.Latest)
}
