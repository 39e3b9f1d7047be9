// Package topology enumerates the constraint groups of a diagonal Sudoku:
// 9 rows, 9 columns, 9 boxes and the two main diagonals, 29 units in total,
// plus the derived peer relation. Everything here is built once and must be
// treated as read-only by callers.
package topology

import (
	"sync"

	"svw.info/diagsudoku/internal/domain"
)

const (
	rowLetters = "ABCDEFGHI"
	colDigits  = "123456789"
)

// Kind labels the constraint family a unit belongs to.
type Kind int

const (
	KindRow Kind = iota
	KindColumn
	KindBox
	KindDiagonal
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindBox:
		return "box"
	default:
		return "diagonal"
	}
}

// Unit is an ordered group of 9 cells subject to a distinctness constraint.
type Unit struct {
	Kind  Kind
	Cells []domain.Cell
}

var (
	once    sync.Once
	cells   []domain.Cell
	units   []Unit
	unitsBy map[domain.Cell][]Unit
	peersBy map[domain.Cell][]domain.Cell
)

func cross(rows, cols string) []domain.Cell {
	out := make([]domain.Cell, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, domain.Cell(string(r)+string(c)))
		}
	}
	return out
}

func build() {
	cells = cross(rowLetters, colDigits)

	for _, r := range rowLetters {
		units = append(units, Unit{Kind: KindRow, Cells: cross(string(r), colDigits)})
	}
	for _, c := range colDigits {
		units = append(units, Unit{Kind: KindColumn, Cells: cross(rowLetters, string(c))})
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			units = append(units, Unit{Kind: KindBox, Cells: cross(rs, cs)})
		}
	}
	main := make([]domain.Cell, 9)
	anti := make([]domain.Cell, 9)
	for i := 0; i < 9; i++ {
		main[i] = domain.Cell(rowLetters[i:i+1] + colDigits[i:i+1])
		anti[i] = domain.Cell(rowLetters[8-i:9-i] + colDigits[i:i+1])
	}
	units = append(units, Unit{Kind: KindDiagonal, Cells: main})
	units = append(units, Unit{Kind: KindDiagonal, Cells: anti})

	unitsBy = make(map[domain.Cell][]Unit, len(cells))
	for _, u := range units {
		for _, c := range u.Cells {
			unitsBy[c] = append(unitsBy[c], u)
		}
	}

	peersBy = make(map[domain.Cell][]domain.Cell, len(cells))
	for _, c := range cells {
		seen := make(map[domain.Cell]bool)
		for _, u := range unitsBy[c] {
			for _, p := range u.Cells {
				if p != c {
					seen[p] = true
				}
			}
		}
		// canonical A1..I9 order keeps propagation deterministic
		peers := make([]domain.Cell, 0, len(seen))
		for _, p := range cells {
			if seen[p] {
				peers = append(peers, p)
			}
		}
		peersBy[c] = peers
	}
}

// Cells returns all 81 cells in canonical row-major order (A1..I9).
func Cells() []domain.Cell {
	once.Do(build)
	return cells
}

// Units returns the 29 units in fixed order: rows, columns, boxes, diagonals.
func Units() []Unit {
	once.Do(build)
	return units
}

// UnitsOf returns the units containing c: 3 for most cells, 4 for cells on a
// diagonal (5 for the center E5, which lies on both).
func UnitsOf(c domain.Cell) []Unit {
	once.Do(build)
	return unitsBy[c]
}

// PeersOf returns every cell sharing a unit with c, excluding c itself, in
// canonical order.
func PeersOf(c domain.Cell) []domain.Cell {
	once.Do(build)
	return peersBy[c]
}
