package roomrender

import "testing"

func collect(f CostField) (cells []Cell, values []uint8) {
	for c, v := range f.Costs() {
		cells = append(cells, c)
		values = append(values, v)
	}
	return cells, values
}

func TestCostMapOrder(t *testing.T) {
	m := CostMap{
		{Col: 3, Row: 1}: 4,
		{Col: 0, Row: 1}: 3,
		{Col: 2, Row: 0}: 2,
		{Col: 1, Row: 0}: 1,
	}

	cells, values := collect(m)
	want := []Cell{{1, 0}, {2, 0}, {0, 1}, {3, 1}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] || values[i] != uint8(i+1) {
			t.Errorf("pair %d = %v:%d, want %v:%d", i, cells[i], values[i], want[i], i+1)
		}
	}
}

func TestCostMapEarlyStop(t *testing.T) {
	m := CostMap{{0, 0}: 1, {1, 0}: 2, {2, 0}: 3}
	n := 0
	for range m.Costs() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break", n)
	}
}

func TestCostMatrix(t *testing.T) {
	m := NewCostMatrix(3, 2)
	m.Set(Cell{2, 1}, 9)
	m.Set(Cell{0, 1}, 5)
	m.Set(Cell{5, 5}, 7) // ignored

	if got := m.Get(Cell{2, 1}); got != 9 {
		t.Errorf("Get(2,1) = %d, want 9", got)
	}
	if got := m.Get(Cell{5, 5}); got != 0 {
		t.Errorf("Get(5,5) = %d, want 0", got)
	}

	// Column-major storage: (col, row) at col*rows+row.
	if m.bits[2*2+1] != 9 || m.bits[0*2+1] != 5 {
		t.Errorf("bits = %v, want column-major layout", m.bits)
	}

	cells, values := collect(m)
	if len(cells) != 2 {
		t.Fatalf("Costs yielded %d pairs, want 2 non-zero", len(cells))
	}
	if cells[0] != (Cell{0, 1}) || values[0] != 5 || cells[1] != (Cell{2, 1}) || values[1] != 9 {
		t.Errorf("Costs = %v %v", cells, values)
	}
}

func TestCostMatrixClone(t *testing.T) {
	m := NewCostMatrix(2, 2)
	m.Set(Cell{1, 1}, 3)

	c := m.Clone()
	c.Set(Cell{1, 1}, 8)

	if m.Get(Cell{1, 1}) != 3 {
		t.Error("Clone shares storage with the original")
	}
	if c.Cols() != 2 || c.Rows() != 2 {
		t.Errorf("clone is %dx%d", c.Cols(), c.Rows())
	}
}

func TestCostMatrixEmpty(t *testing.T) {
	m := NewCostMatrix(0, 4)
	m.Set(Cell{0, 0}, 1)
	if cells, _ := collect(m); len(cells) != 0 {
		t.Errorf("empty matrix yielded %v", cells)
	}
}
