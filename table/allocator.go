package table

import (
	"fmt"
	"slices"
)

// SlotAllocator maps keys to dense slots. Slots are always {0 ... Len()-1}:
// releasing a key shifts every bigger slot down by one.
type SlotAllocator[K comparable] struct {
	slots map[K]int
	order []K // insertion order of known keys
}

func NewSlotAllocator[K comparable]() *SlotAllocator[K] {
	return &SlotAllocator[K]{
		slots: map[K]int{},
		order: []K{},
	}
}

// AssignOrGet returns the slot of key, assigning the smallest free slot if
// the key is new.
func (s *SlotAllocator[K]) AssignOrGet(key K) int {
	if slot, ok := s.slots[key]; ok {
		return slot
	}

	slot := s.smallestFree()
	s.slots[key] = slot
	s.order = append(s.order, key)
	return slot
}

func (s *SlotAllocator[K]) smallestFree() int {
	used := make([]int, 0, len(s.slots))
	for _, slot := range s.slots {
		used = append(used, slot)
	}
	slices.Sort(used)

	for i, slot := range used {
		if slot != i {
			return i
		}
	}
	return len(used)
}

// Release forgets key and returns the slot it was holding. Releasing an
// unknown key is a programming error and panics.
func (s *SlotAllocator[K]) Release(key K) int {
	slot, ok := s.slots[key]
	if !ok {
		panic(fmt.Sprintf("release of unknown key %v", key))
	}

	delete(s.slots, key)
	for k, v := range s.slots {
		if v > slot {
			s.slots[k] = v - 1
		}
	}

	i := slices.Index(s.order, key)
	s.order = slices.Delete(s.order, i, i+1)

	return slot
}

func (s *SlotAllocator[K]) Lookup(key K) (int, bool) {
	slot, ok := s.slots[key]
	return slot, ok
}

// Keys returns known keys in insertion order.
func (s *SlotAllocator[K]) Keys() []K {
	return slices.Clone(s.order)
}

// Slots returns the slot of every known key, in key insertion order.
func (s *SlotAllocator[K]) Slots() []int {
	result := make([]int, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.slots[key])
	}
	return result
}

func (s *SlotAllocator[K]) Len() int {
	return len(s.slots)
}
