// Package cli handles cmd line input driving the widget pipeline, for DBG and testing
package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/pkg/editable"
	"github.com/bastiangx/typeahead/pkg/widget"
)

// anchorCol is the column the demo field pretends to sit at, so the
// rendered box shows the below-left anchoring.
const anchorCol = 2

// InputHandler runs the interactive demo loop: each typed line becomes an
// in-memory field with the caret at its end, the pipeline refreshes the
// suggestion box for it, and a "!N" line applies candidate N in place.
type InputHandler struct {
	widget *widget.Widget
	field  *editable.Field
	log    *log.Logger
}

// NewInputHandler wraps w for the demo loop.
func NewInputHandler(w *widget.Widget) *InputHandler {
	field := editable.NewField("", 0)
	field.SetBounds(editable.Rect{X: anchorCol, Y: 0, W: 40, H: 1})
	return &InputHandler{
		widget: w,
		field:  field,
		log:    logger.Default("typeahead"),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and feeds it
// through the pipeline. Loop terminates if reading from stdin fails.
func (h *InputHandler) Start() error {
	h.log.Print("Typeahead CLI [demo]")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a line and press Enter to see suggestions for the word at the caret")
	h.log.Print("!N applies candidate N to the line (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine routes a raw input line: selection command or field update.
func (h *InputHandler) handleLine(line string) {
	if strings.HasPrefix(line, "!") {
		h.handleSelect(strings.TrimPrefix(line, "!"))
		return
	}

	h.field.SetValue(line)
	h.field.SetCaret(len(line))

	start := time.Now()
	h.widget.OnInput(h.field)
	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for %q", elapsed, line)

	if !h.widget.Box().Visible() {
		h.log.Warnf("No suggestions for the word at the caret")
	}
}

// handleSelect applies the numbered candidate to the current field.
func (h *InputHandler) handleSelect(arg string) {
	candidates := h.widget.Box().Candidates()
	if len(candidates) == 0 {
		h.log.Warn("Nothing to select, the box is hidden")
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(candidates) {
		h.log.Errorf("Pick a candidate between 1 and %d", len(candidates))
		return
	}

	h.widget.Select(h.field, candidates[n-1])
	h.log.Printf("%s", h.field.Value())
	h.log.Printf("%s^ (caret at %d)", strings.Repeat(" ", h.field.Caret()), h.field.Caret())
}
