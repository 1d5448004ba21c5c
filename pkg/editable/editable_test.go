package editable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEditable(t *testing.T) {
	assert.True(t, IsEditable(NewField("hello", 5)))
	assert.True(t, IsEditable(NewRegion("hello")))

	// Buttons, selects, plain containers: anything without an editable
	// capability is not a target.
	assert.False(t, IsEditable(nil))
	assert.False(t, IsEditable("a string"))
	assert.False(t, IsEditable(42))
	assert.False(t, IsEditable(struct{ Label string }{Label: "button"}))
}

func TestFieldCaretClamping(t *testing.T) {
	field := NewField("hello", 99)
	assert.Equal(t, 5, field.Caret())

	field.SetCaret(-3)
	assert.Equal(t, 0, field.Caret())

	field.SetCaret(3)
	field.SetValue("ab")
	assert.Equal(t, 2, field.Caret(), "caret re-clamped into the new value")
}

func TestFieldBounds(t *testing.T) {
	field := NewField("", 0)
	r := Rect{X: 10, Y: 4, W: 120, H: 16}
	field.SetBounds(r)
	assert.Equal(t, r, field.Bounds())
}

func TestRegionSelection(t *testing.T) {
	region := NewRegion("hello wo")
	assert.Equal(t, "", region.SelectionText(), "new region starts collapsed")

	region.Select(6, 8)
	assert.Equal(t, "wo", region.SelectionText())

	// Clamped into the text.
	region.Select(-2, 99)
	assert.Equal(t, "hello wo", region.SelectionText())

	region.Select(5, 2)
	assert.Equal(t, "", region.SelectionText(), "inverted range collapses")
}

func TestRegionInsertText(t *testing.T) {
	region := NewRegion("hello wo")
	region.Select(6, 8)
	region.InsertText("world")

	assert.Equal(t, "hello world", region.Text())
	assert.Equal(t, "", region.SelectionText(), "selection collapses after the insert")

	// Collapsed selection inserts at the caret point.
	region.InsertText("!")
	assert.Equal(t, "hello world!", region.Text())
}
