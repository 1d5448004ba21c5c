package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSegments(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"", []string{""}},
		{"hello", []string{"hello"}},
		{"hello wo", []string{"hello", "wo"}},
		{"hello ", []string{"hello", ""}},
		{" hello", []string{"", "hello"}},
		{"a  b", []string{"a", "b"}},
		{"a\t b", []string{"a", "b"}},
		{"  ", []string{"", ""}},
		{"one two three", []string{"one", "two", "three"}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SplitSegments(tc.input), "input %q", tc.input)
	}
}

func TestLastSegment(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello wo", "wo"},
		{"hello ", ""},
		{"wo", "wo"},
		{"a\tb\tc", "c"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, LastSegment(tc.input), "input %q", tc.input)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("a"))
	assert.False(t, IsBlank(" a "))
}
