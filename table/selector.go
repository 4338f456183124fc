package table

// Selector chooses keys of one dimension for GetAll.
type Selector[K comparable] struct {
	any  bool
	keys []K
}

// Any selects every known key.
func Any[K comparable]() Selector[K] {
	return Selector[K]{any: true}
}

// Key selects a single key.
func Key[K comparable](key K) Selector[K] {
	return Selector[K]{keys: []K{key}}
}

// Keys selects an explicit sequence of keys. Unknown keys are ignored.
func Keys[K comparable](keys ...K) Selector[K] {
	return Selector[K]{keys: keys}
}

// IsAny reports whether s selects every known key.
func (s Selector[K]) IsAny() bool {
	return s.any
}

func (s Selector[K]) resolve(allocator *SlotAllocator[K]) []int {
	if s.any {
		return allocator.Slots()
	}
	slots := make([]int, 0, len(s.keys))
	for _, key := range s.keys {
		if slot, ok := allocator.Lookup(key); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}
