package editable

// Field is an in-memory BufferEditable. It backs the CLI demo and serves
// as the reference implementation for host adapters wrapping real inputs.
type Field struct {
	value  string
	caret  int
	bounds Rect
}

// NewField returns a Field holding value with the caret clamped into it.
func NewField(value string, caret int) *Field {
	f := &Field{value: value}
	f.SetCaret(caret)
	return f
}

func (f *Field) Value() string {
	return f.value
}

func (f *Field) Caret() int {
	return f.caret
}

// SetValue replaces the buffer. The caret is re-clamped so it never points
// past the new contents.
func (f *Field) SetValue(v string) {
	f.value = v
	f.SetCaret(f.caret)
}

func (f *Field) SetCaret(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(f.value) {
		n = len(f.value)
	}
	f.caret = n
}

func (f *Field) SetBounds(r Rect) {
	f.bounds = r
}

func (f *Field) Bounds() Rect {
	return f.bounds
}

// Region is an in-memory SelectionEditable mimicking a content-editable
// surface: plain text plus an active selection range.
type Region struct {
	text     string
	selStart int
	selEnd   int
	bounds   Rect
}

// NewRegion returns a Region holding text with the selection collapsed at
// the end.
func NewRegion(text string) *Region {
	return &Region{text: text, selStart: len(text), selEnd: len(text)}
}

// Select sets the active selection range, clamped into the text.
func (r *Region) Select(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(r.text) {
		end = len(r.text)
	}
	if end < start {
		end = start
	}
	r.selStart, r.selEnd = start, end
}

func (r *Region) SelectionText() string {
	return r.text[r.selStart:r.selEnd]
}

// InsertText replaces the selection with s and collapses the selection
// after it, the way a host's native insertion primitive does.
func (r *Region) InsertText(s string) {
	r.text = r.text[:r.selStart] + s + r.text[r.selEnd:]
	r.selStart += len(s)
	r.selEnd = r.selStart
}

// Text returns the full region contents.
func (r *Region) Text() string {
	return r.text
}

func (r *Region) SetBounds(b Rect) {
	r.bounds = b
}

func (r *Region) Bounds() Rect {
	return r.bounds
}
