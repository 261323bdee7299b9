package page

import "encoding/binary"

// patternFill is the filler word written into an index page's unused
// table-entry slots.
const patternFill = 0x1FFFFFF8

// patternReserve is the number of trailing bytes left unfilled at the end
// of an index page's body (spec.md §4.2: "up to 20 bytes from end").
const patternReserve = 20

// buildIndexPage renders the single index page that begins a table.
// firstDataPage and numRows describe the table's data; hasData is false
// for tables with no rows, in which case firstDataPage is ignored and the
// sentinel value is written instead.
func buildIndexPage(index uint32, hasData bool, firstDataPage uint32, numRows int) []byte {
	buf := make([]byte, Size)

	binary.LittleEndian.PutUint32(buf[0x04:], index)
	binary.LittleEndian.PutUint32(buf[0x08:], terminator)
	buf[0x1B] = FlagIndex

	binary.LittleEndian.PutUint16(buf[0x20:], 0x1FFF)
	binary.LittleEndian.PutUint16(buf[0x22:], 0x1FFF)
	binary.LittleEndian.PutUint16(buf[0x24:], 0x03EC)
	var active uint16
	if hasData {
		active = 1
	}
	binary.LittleEndian.PutUint16(buf[0x26:], active)

	binary.LittleEndian.PutUint32(buf[0x28:], index)
	if hasData {
		binary.LittleEndian.PutUint32(buf[0x2C:], firstDataPage)
	} else {
		binary.LittleEndian.PutUint32(buf[0x2C:], emptyIndexSentinel)
	}
	binary.LittleEndian.PutUint32(buf[0x30:], emptyIndexSentinel)
	binary.LittleEndian.PutUint32(buf[0x34:], 0)

	var numEntries uint16
	if hasData {
		numEntries = 1
	}
	binary.LittleEndian.PutUint16(buf[0x38:], numEntries)
	binary.LittleEndian.PutUint16(buf[0x3A:], 0x1FFF)

	pos := 0x3C
	if hasData {
		binary.LittleEndian.PutUint32(buf[pos:], uint32(numRows*4))
		pos += 4
	}
	for pos+4 <= Size-patternReserve {
		binary.LittleEndian.PutUint32(buf[pos:], patternFill)
		pos += 4
	}

	return buf
}
