// Package display renders candidate boards as a 2-D text grid, colorized
// when writing to a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

// Renderer writes boards to w. Color is enabled automatically when w is a
// terminal; WithColor overrides the detection.
type Renderer struct {
	w     io.Writer
	color bool
}

func New(w io.Writer) *Renderer {
	r := &Renderer{w: w}
	if f, ok := w.(*os.File); ok {
		r.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

func (r *Renderer) WithColor(on bool) *Renderer {
	r.color = on
	return r
}

var (
	solvedColor = color.New(color.FgGreen).SprintFunc()
	diagColor   = color.New(color.FgCyan).SprintFunc()
)

// Render writes the board with each cell's candidate set centered in a fixed
// width column, '|' between box columns and a dashed line between box rows.
// Solved cells are green, solved diagonal cells cyan, when color is on.
func (r *Renderer) Render(b domain.Board) error {
	cells := topology.Cells()
	width := 1
	for _, cell := range cells {
		if n := len(b[cell]); n+1 > width {
			width = n + 1
		}
	}
	line := strings.Join([]string{
		strings.Repeat("-", width*3),
		strings.Repeat("-", width*3),
		strings.Repeat("-", width*3),
	}, "+")

	for ri := 0; ri < 9; ri++ {
		var row strings.Builder
		for ci := 0; ci < 9; ci++ {
			cell := cells[ri*9+ci]
			text := center(string(b[cell]), width)
			if r.color && len(b[cell]) == 1 {
				if ri == ci || ri+ci == 8 {
					text = diagColor(text)
				} else {
					text = solvedColor(text)
				}
			}
			row.WriteString(text)
			if ci == 2 || ci == 5 {
				row.WriteByte('|')
			}
		}
		if _, err := fmt.Fprintln(r.w, row.String()); err != nil {
			return err
		}
		if ri == 2 || ri == 5 {
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
