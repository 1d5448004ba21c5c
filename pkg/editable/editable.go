/*
Package editable defines the capability model for completion targets.

A host reports typing activity on arbitrary elements; only elements
implementing one of the two editable capabilities take part in the
completion pipeline. Targets come in two shapes:

  - BufferEditable: a linear text buffer with a caret offset (single-line
    inputs, text areas).
  - SelectionEditable: a free-form editable region without a linear caret
    offset; text access goes through the active selection and mutation
    through the host's native insertion primitive.

Everything else is not a completion target and the pipeline ignores it.
*/
package editable

// Rect is the bounding rectangle of a target in host coordinates.
// The suggestion box is anchored below its bottom-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// BufferEditable is a target exposing a linear text buffer and caret offset.
type BufferEditable interface {
	// Value returns the full buffer contents.
	Value() string
	// Caret returns the caret offset into the buffer, in bytes.
	Caret() int
	SetValue(v string)
	SetCaret(n int)
	Bounds() Rect
}

// SelectionEditable is a target whose text state is only reachable through
// the active selection. InsertText must behave like the host's native
// text-insertion primitive: replace the selection, collapse it after the
// inserted text, and participate in the host's undo history.
type SelectionEditable interface {
	// SelectionText returns the plain text of the active selection,
	// empty when the selection is collapsed or absent.
	SelectionText() string
	InsertText(s string)
	Bounds() Rect
}

// IsEditable reports whether el is a valid completion target: a buffer
// backed input or an editable region. Anything else, nil included, is not.
// Pure predicate, no side effects.
func IsEditable(el any) bool {
	switch el.(type) {
	case BufferEditable, SelectionEditable:
		return true
	}
	return false
}
