package table

import (
	"strings"
	"text/tabwriter"
)

// Render builds a display matrix: a header row with an empty corner followed
// by the B labels, then one row per A key starting with its label. Every row
// has one cell per known B key; formatItem gets ok == false for empty cells.
func (t *Table[A, B, T]) Render(formatA func(A) string, formatB func(B) string, formatItem func(item T, ok bool) string) [][]string {
	keysA := t.keysA.Keys()
	keysB := t.keysB.Keys()

	header := make([]string, 0, len(keysB)+1)
	header = append(header, "")
	for _, b := range keysB {
		header = append(header, formatB(b))
	}

	out := make([][]string, 0, len(keysA)+1)
	out = append(out, header)

	for _, a := range keysA {
		slotA, _ := t.keysA.Lookup(a)
		row := make([]string, 0, len(keysB)+1)
		row = append(row, formatA(a))
		for _, b := range keysB {
			slotB, _ := t.keysB.Lookup(b)
			row = append(row, formatItem(t.grid.Read(slotA, slotB)))
		}
		out = append(out, row)
	}

	return out
}

// RenderString lays out the Render matrix as aligned text columns.
func (t *Table[A, B, T]) RenderString(formatA func(A) string, formatB func(B) string, formatItem func(item T, ok bool) string) string {
	sb := &strings.Builder{}
	w := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	for _, row := range t.Render(formatA, formatB, formatItem) {
		w.Write([]byte(strings.Join(row, "\t") + "\t\n"))
	}
	w.Flush()
	return sb.String()
}
