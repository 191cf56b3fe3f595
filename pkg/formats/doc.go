// Package formats decodes a package manager's outdated report.
//
// The pipeline is:
//
//	stdout -> Parse -> ParseJSON -> Normalize -> []report.Dependency
//
// Parse applies the empty-output rule (npm prints nothing when no dependency
// is outdated), ParseJSON validates the text at the boundary and keeps the
// raw payload on failure, and Normalize turns the name-keyed object into an
// ordered list.
package formats
