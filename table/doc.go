/*
Package table implements a two-dimensional sparse associative container.

A Table holds at most one item per (keyA, keyB) pair. Each key dimension owns
a SlotAllocator that maps keys to dense integer slots, and the slots address a
ragged Grid of cells. When every cell of a row (or column) becomes empty
through Delete, the key is released and the slots above it are renumbered so
they stay contiguous.

Table is not safe for concurrent use; wrap it in a SyncTable when several
goroutines share it.
*/
package table
