package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "single line",
			input:    "The Web Thing API",
			expected: "The Web Thing API",
		},
		{
			name:     "wrapped abstract",
			input:    "This document describes a\n  Web Thing API that\n\tprovides access to things.",
			expected: "This document describes a Web Thing API that provides access to things.",
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  padded  ",
			expected: "padded",
		},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.Equal(t, tt.expected, CollapseWhitespace(tt.input))
	}
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Web Thing API",
			expected: "web thing api",
		},
		{
			name:     "trims",
			input:    " Web Thing API ",
			expected: "web thing api",
		},
		{
			name:     "normalizes unicode compatibility forms",
			input:    "Web Thing ＡＰＩ",
			expected: "web thing api",
		},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.Equal(t, tt.expected, FoldKey(tt.input))
	}
}
