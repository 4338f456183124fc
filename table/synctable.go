package table

import "sync"

// SyncTable guards a Table with a single lock. Mutations cascade through
// both allocators and the grid.
type SyncTable[A, B comparable, T any] struct {
	table   *Table[A, B, T]
	RWmutex *sync.RWMutex
}

func NewSync[A, B comparable, T any]() *SyncTable[A, B, T] {
	return &SyncTable[A, B, T]{
		table:   New[A, B, T](),
		RWmutex: &sync.RWMutex{},
	}
}

func (s *SyncTable[A, B, T]) Set(a A, b B, item T) {
	s.RWmutex.Lock()
	defer s.RWmutex.Unlock()
	s.table.Set(a, b, item)
}

func (s *SyncTable[A, B, T]) Get(a A, b B) (T, bool) {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.Get(a, b)
}

func (s *SyncTable[A, B, T]) Has(a A, b B) bool {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.Has(a, b)
}

func (s *SyncTable[A, B, T]) GetAll(as Selector[A], bs Selector[B]) []T {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.GetAll(as, bs)
}

func (s *SyncTable[A, B, T]) Delete(a A, b B) {
	s.RWmutex.Lock()
	defer s.RWmutex.Unlock()
	s.table.Delete(a, b)
}

func (s *SyncTable[A, B, T]) DeleteA(a A) {
	s.RWmutex.Lock()
	defer s.RWmutex.Unlock()
	s.table.DeleteA(a)
}

func (s *SyncTable[A, B, T]) DeleteB(b B) {
	s.RWmutex.Lock()
	defer s.RWmutex.Unlock()
	s.table.DeleteB(b)
}

func (s *SyncTable[A, B, T]) Items() []Entry[A, B, T] {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.Items()
}

func (s *SyncTable[A, B, T]) KeysA() []A {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.KeysA()
}

func (s *SyncTable[A, B, T]) KeysB() []B {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.KeysB()
}

func (s *SyncTable[A, B, T]) Len() int {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.Len()
}

func (s *SyncTable[A, B, T]) Render(formatA func(A) string, formatB func(B) string, formatItem func(item T, ok bool) string) [][]string {
	s.RWmutex.RLock()
	defer s.RWmutex.RUnlock()
	return s.table.Render(formatA, formatB, formatItem)
}

// Clear drops every key and item.
func (s *SyncTable[A, B, T]) Clear() {
	s.RWmutex.Lock()
	defer s.RWmutex.Unlock()
	s.table = New[A, B, T]()
}
