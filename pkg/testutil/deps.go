package testutil

import (
	"strconv"

	"github.com/ajxudir/assert-outdated/pkg/report"
)

// DependencyBuilder provides a fluent API for building test dependencies.
type DependencyBuilder struct {
	dep report.Dependency
}

// NewDependency creates a DependencyBuilder for name with its install
// location set to node_modules/<name>, as npm reports it.
//
// Parameters:
//   - name: Dependency name
//
// Returns:
//   - *DependencyBuilder: New builder instance ready for method chaining
func NewDependency(name string) *DependencyBuilder {
	return &DependencyBuilder{
		dep: report.Dependency{
			Name:  name,
			Entry: report.Entry{Location: "node_modules/" + name},
		},
	}
}

// WithVersions sets the current, wanted and latest versions.
//
// Parameters:
//   - current: Installed version
//   - wanted: Highest version matching the declared range
//   - latest: Latest version in the registry
//
// Returns:
//   - *DependencyBuilder: Self for method chaining
func (b *DependencyBuilder) WithVersions(current, wanted, latest string) *DependencyBuilder {
	b.dep.Current = current
	b.dep.Wanted = wanted
	b.dep.Latest = latest
	return b
}

// WithLocation overrides the install location; an empty string removes it.
func (b *DependencyBuilder) WithLocation(location string) *DependencyBuilder {
	b.dep.Location = location
	return b
}

// WithDependent sets the dependent package (npm 7+).
func (b *DependencyBuilder) WithDependent(dependent string) *DependencyBuilder {
	b.dep.Dependent = dependent
	return b
}

// Build returns the constructed dependency.
func (b *DependencyBuilder) Build() report.Dependency {
	return b.dep
}

// Dependencies builds n distinct outdated dependencies, for tests that only
// care about the count.
//
// Parameters:
//   - n: Number of dependencies to build
//
// Returns:
//   - []report.Dependency: n dependencies named dep-0 .. dep-(n-1)
func Dependencies(n int) []report.Dependency {
	deps := make([]report.Dependency, 0, n)
	for i := 0; i < n; i++ {
		deps = append(deps, NewDependency("dep-"+strconv.Itoa(i)).WithVersions("1.0.0", "1.0.1", "2.0.0").Build())
	}
	return deps
}
