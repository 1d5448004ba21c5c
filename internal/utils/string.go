package utils

import "unicode"

// SplitSegments splits a string on runs of whitespace, keeping empty edge
// segments: a leading run yields a leading "" and a trailing run yields a
// trailing "". The caret-side splice logic depends on that trailing empty
// segment to tell "replace the last word" apart from "append a new word".
//
//	SplitSegments("hello wo")  -> ["hello", "wo"]
//	SplitSegments("hello ")    -> ["hello", ""]
//	SplitSegments(" hello")    -> ["", "hello"]
//	SplitSegments("")          -> [""]
func SplitSegments(s string) []string {
	segments := []string{}
	start := 0
	inRun := false

	for i, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				segments = append(segments, s[start:i])
				inRun = true
			}
			start = i + len(string(r))
		} else {
			inRun = false
		}
	}
	segments = append(segments, s[start:])
	return segments
}

// LastSegment returns the final whitespace-delimited segment of s.
// Empty when s is empty or ends in whitespace.
func LastSegment(s string) string {
	segments := SplitSegments(s)
	return segments[len(segments)-1]
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
