// Package report defines the data model of a package manager's outdated
// dependency report.
//
// The package manager prints a JSON object keyed by dependency name:
//
//	{
//	  "lodash": {"current": "4.17.20", "wanted": "4.17.21", "latest": "4.17.21", "location": "node_modules/lodash"}
//	}
//
// Report keeps that object typed and in its original key order; Dependency
// is the normalized per-dependency record the rest of the tool works with.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Entry is the value side of an outdated report: everything npm reports for
// one dependency except its name, which is the key.
//
// Fields:
//   - Current: Installed version; empty when the dependency is not installed
//   - Wanted: Highest version satisfying the declared range
//   - Latest: Version tagged latest in the registry
//   - Location: Install path; absent in some npm versions
//   - Dependent: Package that depends on it (npm 7+)
//   - Type: Dependency type, only with --long
type Entry struct {
	Current   string `json:"current" yaml:"current"`
	Wanted    string `json:"wanted" yaml:"wanted"`
	Latest    string `json:"latest" yaml:"latest"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	Dependent string `json:"dependent,omitempty" yaml:"dependent,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Dependency is one outdated dependency, identified by Name.
//
// Dependencies are built once from a Report and never modified afterwards.
type Dependency struct {
	Name  string `json:"name" yaml:"name"`
	Entry `yaml:",inline"`
}

// Report is the decoded outdated report: a mapping from dependency name to
// Entry that remembers the order in which names appeared.
//
// Fields:
//   - Keys: Dependency names in report order, without duplicates
//   - Entries: Entry for each name in Keys
type Report struct {
	Keys    []string
	Entries map[string]Entry
}

// Len returns the number of dependencies in the report.
func (r Report) Len() int {
	return len(r.Keys)
}

// nonRegistrySources are the placeholders npm prints in place of a version
// for dependencies that do not come from the registry.
var nonRegistrySources = map[string]bool{
	"git":    true,
	"linked": true,
	"remote": true,
}

// IsNonRegistry reports whether version is one of npm's non-registry
// placeholders (git, linked, remote) rather than an actual version.
//
// Parameters:
//   - version: A version string from the report (wanted or latest)
//
// Returns:
//   - bool: true for "git", "linked" or "remote"
func IsNonRegistry(version string) bool {
	return nonRegistrySources[strings.TrimSpace(version)]
}

// IsNonRegistry reports whether npm lists the dependency with a non-registry
// placeholder as its wanted or latest version.
func (d Dependency) IsNonRegistry() bool {
	return IsNonRegistry(d.Latest) || IsNonRegistry(d.Wanted)
}

// UnmarshalJSON decodes an outdated report object.
//
// It performs the following operations:
//   - Step 1: Decodes the object into an ordered map to capture key order
//   - Step 2: Decodes it again into typed entries, which rejects values that
//     are not objects or have fields of the wrong type
//
// Parameters:
//   - data: The raw JSON object
//
// Returns:
//   - error: Returns the decoder error if data is not a JSON object of entries; nil on success
func (r *Report) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("outdated report must be a JSON object")
	}

	ordered := orderedmap.New()
	if err := json.Unmarshal(trimmed, ordered); err != nil {
		return err
	}

	entries := make(map[string]Entry, len(ordered.Keys()))
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return err
	}

	r.Keys = ordered.Keys()
	r.Entries = entries
	return nil
}

// MarshalJSON encodes the report back into a JSON object in report order.
func (r Report) MarshalJSON() ([]byte, error) {
	ordered := orderedmap.New()
	ordered.SetEscapeHTML(false)
	for _, name := range r.Keys {
		ordered.Set(name, r.Entries[name])
	}
	return json.Marshal(ordered)
}
