package table

import (
	"reflect"
	"slices"
	"testing"
)

func TestSlotAllocator_AssignsDenseSlots(t *testing.T) {
	s := NewSlotAllocator[string]()

	for i, key := range []string{"x", "y", "z"} {
		if got := s.AssignOrGet(key); got != i {
			t.Fatalf("expected slot %d for %q, got %d", i, key, got)
		}
	}

	if got := s.AssignOrGet("y"); got != 1 {
		t.Fatalf("expected existing slot 1 for y, got %d", got)
	}
	if s.Len() != 3 {
		t.Fatalf("expected len=3, got %d", s.Len())
	}
}

func TestSlotAllocator_ReleaseRenumbers(t *testing.T) {
	s := NewSlotAllocator[string]()
	s.AssignOrGet("x")
	s.AssignOrGet("y")
	s.AssignOrGet("z")

	if got := s.Release("x"); got != 0 {
		t.Fatalf("expected released slot 0, got %d", got)
	}

	if slot, _ := s.Lookup("y"); slot != 0 {
		t.Fatalf("expected y renumbered to 0, got %d", slot)
	}
	if slot, _ := s.Lookup("z"); slot != 1 {
		t.Fatalf("expected z renumbered to 1, got %d", slot)
	}
	if _, ok := s.Lookup("x"); ok {
		t.Fatalf("expected x to be unknown after release")
	}

	// a new key takes the next contiguous slot
	if got := s.AssignOrGet("w"); got != 2 {
		t.Fatalf("expected slot 2 for w, got %d", got)
	}
}

func TestSlotAllocator_FillsGaps(t *testing.T) {
	s := NewSlotAllocator[string]()

	// Contiguity is kept by Release; force a gap to check the search itself.
	s.slots["a"] = 0
	s.slots["b"] = 2
	s.order = []string{"a", "b"}

	if got := s.AssignOrGet("c"); got != 1 {
		t.Fatalf("expected gap slot 1, got %d", got)
	}
	if got := s.AssignOrGet("d"); got != 3 {
		t.Fatalf("expected slot 3 after the gap is filled, got %d", got)
	}

	s2 := NewSlotAllocator[string]()
	s2.slots["a"] = 1
	s2.order = []string{"a"}
	if got := s2.AssignOrGet("b"); got != 0 {
		t.Fatalf("expected leading gap slot 0, got %d", got)
	}
}

func TestSlotAllocator_KeysInInsertionOrder(t *testing.T) {
	s := NewSlotAllocator[string]()
	s.AssignOrGet("q")
	s.AssignOrGet("p")
	s.AssignOrGet("r")
	s.Release("q")
	s.AssignOrGet("q")

	want := []string{"p", "r", "q"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys mismatch: got %v, want %v", got, want)
	}

	// p and r were shifted down, q came back at the end
	wantSlots := []int{0, 1, 2}
	if got := s.Slots(); !reflect.DeepEqual(got, wantSlots) {
		t.Fatalf("slots mismatch: got %v, want %v", got, wantSlots)
	}
}

func TestSlotAllocator_ReleaseUnknownPanics(t *testing.T) {
	s := NewSlotAllocator[int]()
	s.AssignOrGet(1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic releasing an unknown key")
		}
		if r != "release of unknown key 2" {
			t.Fatalf("unexpected panic message %v", r)
		}
	}()
	s.Release(2)
}

func TestSlotAllocator_ReleaseKnownDoesNotAllocateMessage(t *testing.T) {
	s := NewSlotAllocator[int]()
	s.AssignOrGet(1)

	allocs := testing.AllocsPerRun(100, func() {
		s.AssignOrGet(7)
		s.Release(7)
	})
	// AssignOrGet may allocate its scratch slice of used slots. Release
	// allocates nothing.
	if allocs > 1 {
		t.Fatalf("expected at most 1 allocation per assign/release, got %v", allocs)
	}
}

func TestSlotAllocator_PointerKeysUseIdentity(t *testing.T) {
	type node struct{ name string }
	a := &node{"same"}
	b := &node{"same"}

	s := NewSlotAllocator[*node]()
	if s.AssignOrGet(a) == s.AssignOrGet(b) {
		t.Fatalf("expected distinct slots for distinct pointers")
	}
	if s.Len() != 2 {
		t.Fatalf("expected len=2, got %d", s.Len())
	}
}

func TestSlotAllocator_ContiguousUnderChurn(t *testing.T) {
	s := NewSlotAllocator[int]()
	for i := 0; i < 50; i++ {
		s.AssignOrGet(i)
	}
	for i := 0; i < 50; i += 3 {
		s.Release(i)
	}
	for i := 100; i < 110; i++ {
		s.AssignOrGet(i)
	}

	slots := s.Slots()
	slices.Sort(slots)
	for i, slot := range slots {
		if slot != i {
			t.Fatalf("expected contiguous slots, got %v", slots)
		}
	}
}
