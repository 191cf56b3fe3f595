// Package outdated runs the outdated-dependency check.
//
// Check is the whole pipeline: it runs the package manager's outdated
// command, parses its JSON report, applies the configured filters and
// asserts that no more than the allowed number of dependencies remain.
// Every failure is returned as an error from pkg/errors; nothing in this
// package prints or exits.
package outdated
