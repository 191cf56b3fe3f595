package utils

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Bump kinds describe how far an upgrade moves a dependency.
const (
	BumpMajor      = "major"
	BumpMinor      = "minor"
	BumpPatch      = "patch"
	BumpPreRelease = "prerelease"
)

// CanonicalSemver converts an npm-style version string to canonical semver.
//
// It performs the following operations:
//   - Cleans the input and adds a "v" prefix if missing
//   - Pads missing minor/patch with zeros until valid semver is found
//   - Returns canonical form using semver.Canonical
//
// Parameters:
//   - version: The version string to canonicalize (e.g., "1.2", "1.1.0-beta")
//
// Returns:
//   - string: Canonical semver string (e.g., "v1.2.0"); empty string if not a version
//     (npm placeholders like "git" or "linked" included)
func CanonicalSemver(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	trimmed := strings.TrimPrefix(cleaned, "v")
	parts := strings.Split(trimmed, ".")
	for len(parts) > 0 && len(parts) < 3 {
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
		parts = append(parts, "0")
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}

// BumpKind classifies the upgrade from current to target.
//
// Only display uses this; filtering and counting never look at parsed
// versions.
//
// Parameters:
//   - current: Installed version
//   - target: Version being suggested (usually latest)
//
// Returns:
//   - string: BumpMajor, BumpMinor, BumpPatch or BumpPreRelease; empty when either
//     side is not a version or target is not newer than current
func BumpKind(current, target string) string {
	from := CanonicalSemver(current)
	to := CanonicalSemver(target)
	if from == "" || to == "" || semver.Compare(to, from) <= 0 {
		return ""
	}

	switch {
	case semver.Major(from) != semver.Major(to):
		return BumpMajor
	case semver.MajorMinor(from) != semver.MajorMinor(to):
		return BumpMinor
	case releaseCore(from) != releaseCore(to):
		return BumpPatch
	default:
		return BumpPreRelease
	}
}

// releaseCore strips the pre-release suffix from a canonical version.
func releaseCore(canonical string) string {
	return strings.TrimSuffix(canonical, semver.Prerelease(canonical))
}
