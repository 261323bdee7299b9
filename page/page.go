// Package page implements the DeviceSQL page allocator: fixed-size 4 KiB
// pages with a forward-growing row heap and a backward-growing row
// directory, plus the index-page and file-header layouts that tie tables
// together. See spec.md §4.2.
package page

import (
	"encoding/binary"

	"github.com/mewkiz/pkg/errutil"
)

// Size is the fixed page size in bytes.
const Size = 4096

// HeaderLen is the length of the common page header (0x00-0x27); the data
// heap begins immediately after it.
const HeaderLen = 0x28

// Flag byte values for the common header's page_flags field (offset 0x1B).
const (
	FlagDataNormal       = 0x24
	FlagDataTrackHistory = 0x34
	FlagIndex            = 0x64
)

// terminator marks the end of a next_page chain.
const terminator = 0xFFFFFFFF

// emptyIndexSentinel is written into an empty table's index-page slot in
// place of a successor page index.
const emptyIndexSentinel = 0x03FFFFFF

// ErrRowTooLarge is returned when a single row cannot fit in an otherwise
// empty page.
var ErrRowTooLarge = errutil.Newf("page: row too large to fit an empty page")

// dataPage accumulates rows for one data page before being finalized into
// its on-disk bytes.
type dataPage struct {
	index      uint32
	flag       byte
	heap       []byte   // row bytes, forward-growing, 4-byte padded per row
	rowOffsets []uint16 // offset of each row relative to HeaderLen
	history    bool     // small-field u16 at 0x26 is 1 only for history tables
}

func newDataPage(index uint32, flag byte, history bool) *dataPage {
	return &dataPage{index: index, flag: flag, history: history}
}

// freeSize reports the bytes still available between the heap and a row
// directory sized for rowCount rows (not counting a row about to be added).
func freeSize(heapLen, rowCount int) int {
	groups := numGroups(rowCount)
	return Size - HeaderLen - heapLen - groups*rowGroupLen
}

func numGroups(rowCount int) int {
	if rowCount == 0 {
		return 1
	}
	return (rowCount + rowsPerGroup - 1) / rowsPerGroup
}

// fits reports whether a row of rowBytes length can be appended without the
// heap colliding with the row directory, per spec.md §4.2's overflow rule.
func (p *dataPage) fits(rowBytes int) bool {
	padded := padLen(rowBytes)
	groups := numGroups(len(p.rowOffsets) + 1)
	return len(p.heap)+padded <= Size-HeaderLen-groups*rowGroupLen
}

// addRow appends row to the heap, 4-byte padding it, and records its offset.
func (p *dataPage) addRow(row []byte) {
	off := uint16(len(p.heap))
	p.rowOffsets = append(p.rowOffsets, off)
	p.heap = append(p.heap, row...)
	if pad := padLen(len(row)) - len(row); pad > 0 {
		p.heap = append(p.heap, make([]byte, pad)...)
	}
}

func padLen(n int) int {
	if r := n % 4; r != 0 {
		return n + (4 - r)
	}
	return n
}

// finalize writes p's on-disk bytes. nextPage is the next_page pointer
// (terminator if this is the table's last data page).
func (p *dataPage) finalize(nextPage uint32) []byte {
	buf := make([]byte, Size)
	numRows := len(p.rowOffsets)

	binary.LittleEndian.PutUint32(buf[0x04:], p.index)
	binary.LittleEndian.PutUint32(buf[0x08:], nextPage)
	// Opaque cross-reference/transaction counters (0x0C, 0x10): no
	// reference capture pins a nonzero convention for a write-only
	// emitter, so both are left zero.
	packRowCounts(buf[0x18:0x1B], numRows)
	buf[0x1B] = p.flag
	free := freeSize(len(p.heap), numRows)
	binary.LittleEndian.PutUint16(buf[0x1C:], uint16(free))
	binary.LittleEndian.PutUint16(buf[0x1E:], uint16(len(p.heap)))
	binary.LittleEndian.PutUint16(buf[0x20:], uint16(numRows))
	binary.LittleEndian.PutUint16(buf[0x22:], uint16(numRows))
	binary.LittleEndian.PutUint16(buf[0x24:], 0)
	if p.history {
		binary.LittleEndian.PutUint16(buf[0x26:], 1)
	}

	copy(buf[HeaderLen:], p.heap)
	writeRowDirectory(buf, p.rowOffsets)
	return buf
}

// writeRowDirectory lays out the backward-growing row groups at the end of
// buf, given each row's heap-relative offset.
func writeRowDirectory(buf []byte, offsets []uint16) {
	groups := numGroups(len(offsets))
	for g := 0; g < groups; g++ {
		group := buf[Size-(g+1)*rowGroupLen : Size-g*rowGroupLen]
		lo := g * rowsPerGroup
		hi := lo + rowsPerGroup
		if hi > len(offsets) {
			hi = len(offsets)
		}
		var flags uint16
		for i := lo; i < hi; i++ {
			slot := i - lo
			binary.LittleEndian.PutUint16(group[(rowsPerGroup-1-slot)*2:], offsets[i])
			flags |= 1 << uint(slot)
		}
		binary.LittleEndian.PutUint16(group[32:], flags)
		binary.LittleEndian.PutUint16(group[34:], flags)
	}
}
