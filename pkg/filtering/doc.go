// Package filtering removes noise from an outdated dependency list before it
// is counted.
//
// The only filter is the pre-release filter: when enabled it drops every
// dependency whose installed version is stable but whose latest version is a
// pre-release, since such suggestions are expected churn rather than drift.
//
//	opts := filtering.FromConfig(cfg)
//	deps = filtering.FilterDependencies(deps, opts)
//
// Pre-release detection is textual: a version is a pre-release when it
// contains a hyphen. Versions are never parsed, so npm placeholders such as
// "git", "linked" and "remote" pass through unchanged.
package filtering
