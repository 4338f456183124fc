package table

// Entry is one occupied cell of a Table.
type Entry[A, B comparable, T any] struct {
	A    A `json:"a"`
	B    B `json:"b"`
	Item T `json:"item"`
}

// Table is a sparse 2D map from (A, B) key pairs to items.
type Table[A, B comparable, T any] struct {
	keysA *SlotAllocator[A]
	keysB *SlotAllocator[B]
	grid  *Grid[T]
	count int // occupied cells
}

func New[A, B comparable, T any]() *Table[A, B, T] {
	return &Table[A, B, T]{
		keysA: NewSlotAllocator[A](),
		keysB: NewSlotAllocator[B](),
		grid:  NewGrid[T](),
	}
}

// Set stores item at (a, b), replacing any previous item.
func (t *Table[A, B, T]) Set(a A, b B, item T) {
	slotA := t.keysA.AssignOrGet(a)
	slotB := t.keysB.AssignOrGet(b)
	if _, ok := t.grid.Read(slotA, slotB); !ok {
		t.count++
	}
	t.grid.Write(slotA, slotB, item)
}

// Get returns the item at (a, b). Unknown keys are reported as absent.
func (t *Table[A, B, T]) Get(a A, b B) (T, bool) {
	slotA, okA := t.keysA.Lookup(a)
	slotB, okB := t.keysB.Lookup(b)
	if !okA || !okB {
		var zero T
		return zero, false
	}
	return t.grid.Read(slotA, slotB)
}

func (t *Table[A, B, T]) Has(a A, b B) bool {
	_, ok := t.Get(a, b)
	return ok
}

// GetAll returns every item in the cross product of the selected keys,
// A keys outer and B keys inner.
func (t *Table[A, B, T]) GetAll(as Selector[A], bs Selector[B]) []T {
	slotsA := as.resolve(t.keysA)
	slotsB := bs.resolve(t.keysB)

	result := []T{}
	for _, slotA := range slotsA {
		for _, slotB := range slotsB {
			if item, ok := t.grid.Read(slotA, slotB); ok {
				result = append(result, item)
			}
		}
	}
	return result
}

// Delete clears the cell (a, b). If that leaves the row of a empty, a is
// released; if it leaves the column of b empty, b is released too.
//
// Note the difference with DeleteA and DeleteB, which release their key
// whatever the occupancy is.
func (t *Table[A, B, T]) Delete(a A, b B) {
	slotA, okA := t.keysA.Lookup(a)
	slotB, okB := t.keysB.Lookup(b)
	if !okA || !okB {
		return
	}

	if _, ok := t.grid.Read(slotA, slotB); ok {
		t.count--
	}
	t.grid.Clear(slotA, slotB)

	releaseA := t.grid.RowIsEmpty(slotA)
	releaseB := t.grid.ColumnIsEmpty(slotB)

	if releaseA {
		t.releaseA(a)
	}
	if releaseB {
		t.releaseB(b)
	}
}

// DeleteA removes key a and all its items.
func (t *Table[A, B, T]) DeleteA(a A) {
	if _, ok := t.keysA.Lookup(a); !ok {
		return
	}
	t.releaseA(a)
}

// DeleteB removes key b and all its items.
func (t *Table[A, B, T]) DeleteB(b B) {
	if _, ok := t.keysB.Lookup(b); !ok {
		return
	}
	t.releaseB(b)
}

func (t *Table[A, B, T]) releaseA(a A) {
	slot := t.keysA.Release(a)
	t.count -= t.grid.RowCount(slot)
	t.grid.RemoveRow(slot)
}

func (t *Table[A, B, T]) releaseB(b B) {
	slot := t.keysB.Release(b)
	t.count -= t.grid.ColumnCount(slot)
	t.grid.RemoveColumn(slot)
}

// Items returns every occupied cell, A keys outer and B keys inner, both in
// key insertion order.
func (t *Table[A, B, T]) Items() []Entry[A, B, T] {
	keysA := t.keysA.Keys()
	keysB := t.keysB.Keys()

	result := []Entry[A, B, T]{}
	for _, a := range keysA {
		slotA, _ := t.keysA.Lookup(a)
		for _, b := range keysB {
			slotB, _ := t.keysB.Lookup(b)
			if item, ok := t.grid.Read(slotA, slotB); ok {
				result = append(result, Entry[A, B, T]{A: a, B: b, Item: item})
			}
		}
	}
	return result
}

func (t *Table[A, B, T]) KeysA() []A {
	return t.keysA.Keys()
}

func (t *Table[A, B, T]) KeysB() []B {
	return t.keysB.Keys()
}

// Len is the number of occupied cells.
func (t *Table[A, B, T]) Len() int {
	return t.count
}
