// Package parser converts 81-character grid strings into candidate boards.
package parser

import (
	"errors"
	"fmt"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

var (
	// ErrGridLength indicates the input is not exactly 81 characters.
	ErrGridLength = errors.New("parser: grid must be exactly 81 characters")
	// ErrGridRune indicates a character other than '1'-'9', '.' or '0'.
	ErrGridRune = errors.New("parser: grid may only contain digits, '.' or '0'")
)

// Parse converts a row-major grid string into a candidate board. '.' or '0'
// marks an unknown cell (all nine digits remain); '1'-'9' fixes the cell to
// that single digit. The solver core assumes boards come through here and
// does not re-validate.
func Parse(grid string) (domain.Board, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("%w: got %d", ErrGridLength, len(grid))
	}
	b := make(domain.Board, 81)
	for i, cell := range topology.Cells() {
		ch := grid[i]
		switch {
		case ch == '.' || ch == '0':
			b[cell] = domain.AllDigits
		case ch >= '1' && ch <= '9':
			idx := int(ch - '1')
			b[cell] = domain.AllDigits[idx : idx+1]
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrGridRune, ch, i)
		}
	}
	return b, nil
}

// GridString renders a board back into the 81-character form, using '.' for
// any cell still holding more than one candidate.
func GridString(b domain.Board) string {
	out := make([]byte, 0, 81)
	for _, cell := range topology.Cells() {
		if v := b[cell]; len(v) == 1 {
			out = append(out, v[0])
		} else {
			out = append(out, '.')
		}
	}
	return string(out)
}
