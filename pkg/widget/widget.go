/*
Package widget wires the completion pipeline together: classify the event
target, extract the token at the caret, look up candidates, and drive the
suggestion box.

The pipeline is one pure-ish function, Refresh, invoked from two trigger
bindings (OnInput and OnKeyPress). Hosts that fire both for a single
keystroke run it twice; the second run is redundant but idempotent, since
the result depends only on the target's current state. Every failure mode
degrades to "box hidden", never an error.
*/
package widget

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/pkg/editable"
	"github.com/bastiangx/typeahead/pkg/overlay"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/bastiangx/typeahead/pkg/token"
)

// Options bound what the pipeline will look up and show.
type Options struct {
	// MaxCandidates caps how many candidates reach the box.
	MaxCandidates int
	// MinTokenLen and MaxTokenLen gate tokens before lookup.
	MinTokenLen int
	MaxTokenLen int
}

// DefaultOptions returns the builtin pipeline bounds.
func DefaultOptions() Options {
	return Options{
		MaxCandidates: 24,
		MinTokenLen:   1,
		MaxTokenLen:   60,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = def.MaxCandidates
	}
	if o.MinTokenLen <= 0 {
		o.MinTokenLen = def.MinTokenLen
	}
	if o.MaxTokenLen <= 0 {
		o.MaxTokenLen = def.MaxTokenLen
	}
	return o
}

// Widget owns one suggestion box and resolves completions from one source.
type Widget struct {
	source suggest.Source
	box    *overlay.Box
	opts   Options
}

// New returns a widget resolving from source and drawing through renderer.
func New(source suggest.Source, renderer overlay.Renderer, opts Options) *Widget {
	return &Widget{
		source: source,
		box:    overlay.NewBox(renderer),
		opts:   opts.withDefaults(),
	}
}

// Box exposes the widget's suggestion box, mainly so hosts can read its
// state and tests can assert on it.
func (w *Widget) Box() *overlay.Box {
	return w.box
}

// Refresh runs the full pipeline for the event target el. Non-editable
// targets, empty or out-of-bounds tokens, and unmatched tokens all hide
// the box; a matched token shows it anchored to el.
func (w *Widget) Refresh(el any) {
	if !editable.IsEditable(el) {
		w.box.Hide()
		return
	}

	tok := token.Extract(el)
	if tok == "" || len(tok) < w.opts.MinTokenLen || len(tok) > w.opts.MaxTokenLen {
		w.box.Hide()
		return
	}

	candidates := w.source.Lookup(tok)
	if len(candidates) > w.opts.MaxCandidates {
		candidates = candidates[:w.opts.MaxCandidates]
	}
	log.Debugf("Refresh: token %q, %d candidates", tok, len(candidates))

	w.box.Update(bounds(el), candidates)
}

// OnInput is the input-change trigger binding.
func (w *Widget) OnInput(el any) {
	w.Refresh(el)
}

// OnKeyPress is the key-press trigger binding.
func (w *Widget) OnKeyPress(el any) {
	w.Refresh(el)
}

// Select applies choice to el in place of the current token and hides the
// box. Buffer targets get the token spliced in with the caret placed after
// it; selection targets go through the host's insertion primitive. The
// host must suppress the default pointer-down action on the candidate row
// before calling, so el still holds the focus and selection state used
// here. Non-editable targets only hide the box.
func (w *Widget) Select(el any, choice string) {
	switch t := el.(type) {
	case editable.BufferEditable:
		text, caret := token.Splice(t.Value(), t.Caret(), choice)
		t.SetValue(text)
		t.SetCaret(caret)
	case editable.SelectionEditable:
		t.InsertText(choice)
	}
	w.box.Hide()
}

func bounds(el any) editable.Rect {
	switch t := el.(type) {
	case editable.BufferEditable:
		return t.Bounds()
	case editable.SelectionEditable:
		return t.Bounds()
	}
	return editable.Rect{}
}
