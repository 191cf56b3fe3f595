package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii string", "hello", 5},
		{"scoped package", "@babel/core", 11},
		{"unicode chars", "日本語", 6},
		{"mixed", "abc日本", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayWidth(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "test", 0, "test"},
		{"negative width", "test", -1, "test"},
		{"exact width", "test", 4, "test"},
		{"longer than width", "testing", 4, "testing"},
		{"needs padding", "test", 8, "test    "},
		{"empty string", "", 4, "    "},
		{"wide chars", "日本", 6, "日本  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToWidth(tt.val, tt.width)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdefghij", 6))
	assert.Equal(t, "abcdefghij", Truncate("abcdefghij", 3), "widths below 4 disable truncation")
	assert.Equal(t, 6, DisplayWidth(Truncate("node_modules/some-package", 6)))
}
