package page

import (
	"bytes"

	"github.com/icza/bitio"
)

// rowGroupLen is the size of one backward-growing row-directory group.
const rowGroupLen = 36

// rowsPerGroup is the number of row slots held by one row group.
const rowsPerGroup = 16

// packRowCounts packs numRows into the 3-byte field at page offset 0x18:
// high 13 bits hold num_row_slots (4 × numRows), low 11 bits hold numRows
// itself (spec.md §4.2, §9). Unlike the rest of the little-endian page
// header, this field is bit-packed most-significant-bit first, mirroring
// the teacher's own bitio.Writer.WriteBits usage for sub-byte fields; dst
// must be a 3-byte slice.
func packRowCounts(dst []byte, numRows int) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	numRowSlots := uint64(4 * numRows)
	bw.TryWriteBits(numRowSlots, 13)
	bw.TryWriteBits(uint64(numRows), 11)
	bw.Close()
	copy(dst, buf.Bytes())
}

// unpackRowCounts reverses packRowCounts, returning num_row_slots and
// numRows as read from a 3-byte field in the same bit order.
func unpackRowCounts(src []byte) (numRowSlots, numRows int) {
	br := bitio.NewReader(bytes.NewReader(src))
	slots, _ := br.ReadBits(13)
	rows, _ := br.ReadBits(11)
	return int(slots), int(rows)
}

// UnpackRowCounts is the exported form of unpackRowCounts, for readers
// outside this package (e.g. an independent validator) that need to parse
// the packed row-count field at a data page's offset 0x18 without
// reimplementing its bit layout. src must be at least 3 bytes.
func UnpackRowCounts(src []byte) (numRowSlots, numRows int) {
	return unpackRowCounts(src)
}
