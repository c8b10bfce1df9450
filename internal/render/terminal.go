package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws the grid as text, two columns per cell.
type TerminalRenderer struct {
	w     *bufio.Writer
	Clear bool
}

// NewTerminalRenderer returns a renderer writing to out. When clear is set each
// frame starts by homing the cursor and clearing the screen.
func NewTerminalRenderer(out io.Writer, clear bool) *TerminalRenderer {
	return &TerminalRenderer{w: bufio.NewWriter(out), Clear: clear}
}

// Render writes one frame.
func (r *TerminalRenderer) Render(cells []uint8, w, h int) error {
	if r.Clear {
		r.w.WriteString(clearScreen)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != 0 {
				r.w.WriteString(gridPosBlock)
			} else {
				r.w.WriteString(gridPosEmpty)
			}
		}
		r.w.WriteByte('\n')
	}
	if err := r.w.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to flush frame")
	}
	return nil
}
