package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalSemver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"1", "v1.0.0"},
		{" 2.0.0 ", "v2.0.0"},
		{"1.1.0-beta", "v1.1.0-beta"},
		{"1.0.0-beta.1", "v1.0.0-beta.1"},
		{"", ""},
		{"git", ""},
		{"linked", ""},
		{"remote", ""},
		{"latest", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalSemver(tt.input))
		})
	}
}

func TestBumpKind(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		expected string
	}{
		{"major", "1.0.0", "2.0.0", BumpMajor},
		{"minor", "1.0.0", "1.1.0", BumpMinor},
		{"patch", "1.0.0", "1.0.1", BumpPatch},
		{"pre-release to release", "1.1.0-beta", "1.1.0", BumpPreRelease},
		{"release to next pre-release", "1.0.0", "1.0.1-beta", BumpPatch},
		{"pre-release bump", "1.1.0-beta.1", "1.1.0-beta.2", BumpPreRelease},
		{"same version", "1.0.0", "1.0.0", ""},
		{"downgrade", "2.0.0", "1.0.0", ""},
		{"git current", "git", "1.0.0", ""},
		{"linked latest", "1.0.0", "linked", ""},
		{"missing current", "", "1.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BumpKind(tt.current, tt.target))
		})
	}
}
