// Package physics provides the broad-phase spatial index used by the
// asteroid bounce pass.
package physics

import (
	"math"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Grid is a uniform spatial hash over a wrapping field. Bodies are inserted
// by position and slice index every frame, and candidate pairs come from a
// 3x3 neighborhood query that wraps at the field edges.
//
// The cell size must be at least the largest pair interaction distance, or
// the neighborhood can miss candidates.
type Grid struct {
	cell    float64
	invCell float64 // 1 / cell, precomputed
	cols    int
	rows    int
	cells   [][]int
}

// NewGrid creates a grid covering bounds with the given cell size.
func NewGrid(bounds geom.Size, cell float64) *Grid {
	cols := int(math.Ceil(bounds.W / cell))
	rows := int(math.Ceil(bounds.H / cell))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cell:    cell,
		invCell: 1.0 / cell,
		cols:    cols,
		rows:    rows,
		cells:   make([][]int, cols*rows),
	}
}

// Reset empties every cell, keeping the backing arrays for reuse.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files an index under the cell containing pos.
func (g *Grid) Insert(pos geom.Vec, idx int) {
	col, row := g.cellAt(pos)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], idx)
}

// ForEachNear calls fn for every index in the 3x3 cell neighborhood around
// pos, wrapping at the edges. Iteration stops early when fn returns true.
func (g *Grid) ForEachNear(pos geom.Vec, fn func(idx int) bool) {
	col, row := g.cellAt(pos)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 {
			r += g.rows
		} else if r >= g.rows {
			r -= g.rows
		}
		base := r * g.cols

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 {
				c += g.cols
			} else if c >= g.cols {
				c -= g.cols
			}
			for _, idx := range g.cells[base+c] {
				if fn(idx) {
					return
				}
			}
		}
	}
}

// cellAt clamps pos into the cell table, tolerating positions in the wrap
// margin just outside the field.
func (g *Grid) cellAt(pos geom.Vec) (col, row int) {
	col = int(pos.X * g.invCell)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	row = int(pos.Y * g.invCell)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
