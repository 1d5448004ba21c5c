/*
Package overlay implements the floating suggestion box.

The box is a two-state machine, Hidden and Shown, owned by a widget and
drawn through an injected Renderer. Its content is replaced wholesale on
every update; a box shown for a new target carries nothing over from the
previous one. All mutation is expected to happen on the host's single
event-dispatch thread, so there is no locking; call ordering is state
ordering.
*/
package overlay

import (
	"github.com/bastiangx/typeahead/pkg/editable"
)

// Row is one rendered candidate line.
type Row struct {
	Index int
	Text  string
}

// Renderer draws the box for the host. Show receives the box origin
// (already positioned below and left-aligned with the anchor target) and
// the full row set; each Show call replaces whatever was on screen before.
type Renderer interface {
	Show(origin editable.Rect, rows []Row)
	Hide()
}

// Box tracks the suggestion overlay's state and drives a Renderer.
type Box struct {
	renderer   Renderer
	visible    bool
	anchor     editable.Rect
	candidates []string
}

// NewBox returns a hidden box drawing through r.
func NewBox(r Renderer) *Box {
	return &Box{renderer: r}
}

// Update moves the box to the Shown state for anchor with candidates, or
// hides it when candidates is empty. A Shown box is repositioned and
// repopulated in a single Show call, with no observable Hidden blip in
// between.
func (b *Box) Update(anchor editable.Rect, candidates []string) {
	if len(candidates) == 0 {
		b.Hide()
		return
	}

	b.candidates = make([]string, len(candidates))
	copy(b.candidates, candidates)
	b.anchor = anchor
	b.visible = true

	rows := make([]Row, len(candidates))
	for i, c := range candidates {
		rows[i] = Row{Index: i, Text: c}
	}
	origin := editable.Rect{X: anchor.X, Y: anchor.Y + anchor.H, W: anchor.W}
	b.renderer.Show(origin, rows)
}

// Hide moves the box to the Hidden state. Idempotent: the renderer sees a
// single Hide per transition and none when the box is already hidden.
func (b *Box) Hide() {
	if !b.visible {
		return
	}
	b.visible = false
	b.candidates = nil
	b.renderer.Hide()
}

// Visible reports whether the box is in the Shown state.
func (b *Box) Visible() bool {
	return b.visible
}

// Candidates returns a copy of the currently displayed candidate list,
// nil when hidden.
func (b *Box) Candidates() []string {
	if b.candidates == nil {
		return nil
	}
	out := make([]string, len(b.candidates))
	copy(out, b.candidates)
	return out
}

// Anchor returns the bounding rect of the target the box is anchored to.
// Meaningful only while Visible.
func (b *Box) Anchor() editable.Rect {
	return b.anchor
}
