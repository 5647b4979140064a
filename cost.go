package roomrender

import (
	"iter"
	"maps"
	"slices"
)

// CostField is a sparse mapping from cells to 8-bit costs.
// A zero cost means the cell has no entry.
type CostField interface {
	// Costs yields every (cell, cost) pair. Cells must be unique.
	Costs() iter.Seq2[Cell, uint8]
}

// CostMap is a map-backed CostField.
type CostMap map[Cell]uint8

// Costs implements CostField. Pairs are yielded in row-major cell order so
// that rendering is deterministic.
func (m CostMap) Costs() iter.Seq2[Cell, uint8] {
	return func(yield func(Cell, uint8) bool) {
		cells := slices.SortedFunc(maps.Keys(m), func(a, b Cell) int {
			if a.Row != b.Row {
				return a.Row - b.Row
			}
			return a.Col - b.Col
		})
		for _, c := range cells {
			if !yield(c, m[c]) {
				return
			}
		}
	}
}

// CostMatrix is a dense cols×rows CostField stored column-major,
// so the cost of (col, row) lives at index col*rows+row.
type CostMatrix struct {
	cols, rows int
	bits       []uint8
}

// NewCostMatrix creates an all-zero matrix. Non-positive dimensions yield an
// empty matrix.
func NewCostMatrix(cols, rows int) *CostMatrix {
	if cols <= 0 || rows <= 0 {
		return &CostMatrix{}
	}
	return &CostMatrix{cols: cols, rows: rows, bits: make([]uint8, cols*rows)}
}

// Cols returns the number of columns.
func (m *CostMatrix) Cols() int { return m.cols }

// Rows returns the number of rows.
func (m *CostMatrix) Rows() int { return m.rows }

func (m *CostMatrix) index(c Cell) (int, bool) {
	if c.Col < 0 || c.Col >= m.cols || c.Row < 0 || c.Row >= m.rows {
		return 0, false
	}
	return c.Col*m.rows + c.Row, true
}

// Get returns the cost at c, or 0 when c is outside the matrix.
func (m *CostMatrix) Get(c Cell) uint8 {
	i, ok := m.index(c)
	if !ok {
		return 0
	}
	return m.bits[i]
}

// Set stores cost at c. Cells outside the matrix are ignored.
func (m *CostMatrix) Set(c Cell, cost uint8) {
	if i, ok := m.index(c); ok {
		m.bits[i] = cost
	}
}

// Clone returns an independent copy of m.
func (m *CostMatrix) Clone() *CostMatrix {
	return &CostMatrix{cols: m.cols, rows: m.rows, bits: slices.Clone(m.bits)}
}

// Costs implements CostField, yielding non-zero entries in storage order.
func (m *CostMatrix) Costs() iter.Seq2[Cell, uint8] {
	return func(yield func(Cell, uint8) bool) {
		for i, v := range m.bits {
			if v == 0 {
				continue
			}
			if !yield(Cell{Col: i / m.rows, Row: i % m.rows}, v) {
				return
			}
		}
	}
}
