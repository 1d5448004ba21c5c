// Package token implements word-boundary extraction and in-place
// replacement for completion targets. A token is the whitespace-delimited
// word ending at the caret.
package token

import (
	"strings"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/editable"
)

// Extract returns the token currently being typed in el.
//
// Buffer targets: the final whitespace-delimited segment of the text before
// the caret; empty when the caret sits at the buffer start or right after
// whitespace. Selection targets have no linear caret offset, so the active
// selection's plain text is returned verbatim, not boundary-trimmed; empty
// when there is no selection. Non-editable elements yield "".
func Extract(el any) string {
	switch t := el.(type) {
	case editable.BufferEditable:
		value := t.Value()
		caret := clamp(t.Caret(), len(value))
		return utils.LastSegment(value[:caret])
	case editable.SelectionEditable:
		return t.SelectionText()
	}
	return ""
}

// Splice replaces the token ending at caret with choice and returns the new
// buffer along with the caret offset placed right after the inserted text.
//
// The prefix before the caret is split on whitespace runs, the last segment
// swapped for choice, and the segments rejoined with single spaces before
// the untouched remainder is appended. The single-space rejoin collapses
// any multi-space or tab runs in the prefix; inherited quirk, kept as
// documented behavior.
func Splice(text string, caret int, choice string) (string, int) {
	caret = clamp(caret, len(text))

	segments := utils.SplitSegments(text[:caret])
	segments[len(segments)-1] = choice
	prefix := strings.Join(segments, " ")

	return prefix + text[caret:], len(prefix)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
