package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/typeahead/pkg/editable"
)

type showCall struct {
	origin editable.Rect
	rows   []Row
}

// recordRenderer captures every renderer call for state assertions.
type recordRenderer struct {
	shows []showCall
	hides int
}

func (r *recordRenderer) Show(origin editable.Rect, rows []Row) {
	r.shows = append(r.shows, showCall{origin: origin, rows: rows})
}

func (r *recordRenderer) Hide() {
	r.hides++
}

func TestBoxStartsHidden(t *testing.T) {
	box := NewBox(&recordRenderer{})

	assert.False(t, box.Visible())
	assert.Nil(t, box.Candidates())
}

func TestBoxShow(t *testing.T) {
	renderer := &recordRenderer{}
	box := NewBox(renderer)

	anchor := editable.Rect{X: 10, Y: 20, W: 120, H: 16}
	box.Update(anchor, []string{"hello", "help"})

	assert.True(t, box.Visible())
	assert.Equal(t, []string{"hello", "help"}, box.Candidates())
	assert.Equal(t, anchor, box.Anchor())

	require.Len(t, renderer.shows, 1)
	call := renderer.shows[0]
	assert.Equal(t, 10.0, call.origin.X, "left-aligned with the anchor")
	assert.Equal(t, 36.0, call.origin.Y, "immediately below the anchor")
	assert.Equal(t, []Row{{Index: 0, Text: "hello"}, {Index: 1, Text: "help"}}, call.rows)
}

func TestBoxHideOnEmptyUpdate(t *testing.T) {
	renderer := &recordRenderer{}
	box := NewBox(renderer)

	box.Update(editable.Rect{}, []string{"hello"})
	box.Update(editable.Rect{}, nil)

	assert.False(t, box.Visible())
	assert.Nil(t, box.Candidates())
	assert.Equal(t, 1, renderer.hides)
}

func TestBoxHideIdempotent(t *testing.T) {
	renderer := &recordRenderer{}
	box := NewBox(renderer)

	// Hiding a hidden box never reaches the renderer.
	box.Hide()
	assert.Equal(t, 0, renderer.hides)

	box.Update(editable.Rect{}, []string{"hello"})
	box.Hide()
	box.Hide()
	assert.Equal(t, 1, renderer.hides)
}

func TestBoxShownToShownReplacesWholesale(t *testing.T) {
	renderer := &recordRenderer{}
	box := NewBox(renderer)

	first := editable.Rect{X: 1, Y: 2, W: 30, H: 10}
	second := editable.Rect{X: 50, Y: 60, W: 30, H: 10}

	box.Update(first, []string{"hello", "help", "helmet"})
	box.Update(second, []string{"world"})

	// Content and position belong to the second target only, and no
	// transient Hidden state was observable in between.
	assert.True(t, box.Visible())
	assert.Equal(t, []string{"world"}, box.Candidates())
	assert.Equal(t, second, box.Anchor())
	assert.Len(t, renderer.shows, 2)
	assert.Equal(t, 0, renderer.hides)
}

func TestBoxCandidatesIsCopy(t *testing.T) {
	box := NewBox(&recordRenderer{})
	box.Update(editable.Rect{}, []string{"hello"})

	box.Candidates()[0] = "mutated"
	assert.Equal(t, []string{"hello"}, box.Candidates())
}

func TestBoxCopiesInputCandidates(t *testing.T) {
	box := NewBox(&recordRenderer{})

	input := []string{"hello"}
	box.Update(editable.Rect{}, input)
	input[0] = "mutated"

	assert.Equal(t, []string{"hello"}, box.Candidates())
}
