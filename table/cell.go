package table

type cellState uint8

const (
	cellEmpty cellState = iota
	cellAlive
)

// Cell holds zero or one item. A zero value item stored with Put is still
// present; only Clear (or never writing) makes a cell empty.
type Cell[T any] struct {
	state cellState
	item  T
}

func (c *Cell[T]) Put(item T) {
	c.item = item
	c.state = cellAlive
}

func (c *Cell[T]) Clear() {
	var zero T
	c.item = zero
	c.state = cellEmpty
}

func (c Cell[T]) Get() (T, bool) {
	if c.state != cellAlive {
		var zero T
		return zero, false
	}
	return c.item, true
}

func (c Cell[T]) IsEmpty() bool {
	return c.state != cellAlive
}
