package pdb

import "github.com/xilver1/rekord-export/dsstring"

// colorPalette is the fixed eight-entry Colors table every export carries,
// even for an empty library (spec.md §9: "Colors table is never empty").
var colorPalette = [8]string{"Pink", "Red", "Orange", "Yellow", "Green", "Aqua", "Blue", "Purple"}

// buildColorRow renders one Colors-table row: 5 zero bytes, u16 id, 1 zero
// byte, then name.
func buildColorRow(id uint16, name string) []byte {
	row := pack([]field{
		u32("zero0", 0),
		u8("zero1", 0),
		u16("id", id),
		u8("zero2", 0),
	})
	return append(row, dsstring.Encode(name)...)
}

// buildColorRows renders all 8 fixed palette rows, ids 1..8.
func buildColorRows() [][]byte {
	rows := make([][]byte, len(colorPalette))
	for i, name := range colorPalette {
		rows[i] = buildColorRow(uint16(i+1), name)
	}
	return rows
}
