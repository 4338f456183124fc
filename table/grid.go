package table

// Grid is a growable 2D array of cells addressed by (a, b) slots. Rows may
// have different lengths; anything out of range reads as empty.
type Grid[T any] struct {
	rows [][]Cell[T]
}

func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{
		rows: make([][]Cell[T], 0),
	}
}

// Ensure grows rows up to a and row a up to column b. It never shrinks.
func (g *Grid[T]) Ensure(a, b int) {
	for len(g.rows) <= a {
		g.rows = append(g.rows, make([]Cell[T], 0))
	}
	for len(g.rows[a]) <= b {
		g.rows[a] = append(g.rows[a], Cell[T]{})
	}
}

func (g *Grid[T]) Write(a, b int, item T) {
	g.Ensure(a, b)
	g.rows[a][b].Put(item)
}

func (g *Grid[T]) Read(a, b int) (T, bool) {
	if !g.inRange(a, b) {
		var zero T
		return zero, false
	}
	return g.rows[a][b].Get()
}

func (g *Grid[T]) Clear(a, b int) {
	if !g.inRange(a, b) {
		return
	}
	g.rows[a][b].Clear()
}

func (g *Grid[T]) inRange(a, b int) bool {
	return a >= 0 && a < len(g.rows) && b >= 0 && b < len(g.rows[a])
}

func (g *Grid[T]) RowIsEmpty(a int) bool {
	if a < 0 || a >= len(g.rows) {
		return true
	}
	for _, cell := range g.rows[a] {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid[T]) ColumnIsEmpty(b int) bool {
	for _, row := range g.rows {
		if b < len(row) && !row[b].IsEmpty() {
			return false
		}
	}
	return true
}

// RowCount is the number of occupied cells in row a.
func (g *Grid[T]) RowCount(a int) int {
	if a < 0 || a >= len(g.rows) {
		return 0
	}
	n := 0
	for _, cell := range g.rows[a] {
		if !cell.IsEmpty() {
			n++
		}
	}
	return n
}

// ColumnCount is the number of occupied cells in column b.
func (g *Grid[T]) ColumnCount(b int) int {
	n := 0
	for _, row := range g.rows {
		if b >= 0 && b < len(row) && !row[b].IsEmpty() {
			n++
		}
	}
	return n
}

// RemoveRow deletes row a, shifting the following rows one position up.
func (g *Grid[T]) RemoveRow(a int) {
	if a < 0 || a >= len(g.rows) {
		return
	}
	copy(g.rows[a:], g.rows[a+1:])
	g.rows[len(g.rows)-1] = nil
	g.rows = g.rows[:len(g.rows)-1]
}

// RemoveColumn deletes column b from every row that has it.
func (g *Grid[T]) RemoveColumn(b int) {
	if b < 0 {
		return
	}
	for i, row := range g.rows {
		if b >= len(row) {
			continue
		}
		copy(row[b:], row[b+1:])
		row[len(row)-1] = Cell[T]{}
		g.rows[i] = row[:len(row)-1]
	}
}

func (g *Grid[T]) Rows() int {
	return len(g.rows)
}

// RowLen is the number of allocated cells in row a.
func (g *Grid[T]) RowLen(a int) int {
	if a < 0 || a >= len(g.rows) {
		return 0
	}
	return len(g.rows[a])
}
