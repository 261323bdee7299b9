package page

import "encoding/binary"

// NumTables is the fixed number of tables a PDB file always carries.
const NumTables = 20

// TablePointer locates one table's index page and its last data page, per
// spec.md §4.2. For an empty table, LastDataPage equals IndexPage.
type TablePointer struct {
	FirstCounter uint32
	IndexPage    uint32
	LastDataPage uint32
	TableType    uint32
}

// BuildFileHeader renders page 0: the fixed header plus the 20 table
// pointers, in table-type order.
func BuildFileHeader(nextUnusedPage uint32, tables [NumTables]TablePointer) []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0x04:], Size)
	binary.LittleEndian.PutUint32(buf[0x08:], NumTables)
	binary.LittleEndian.PutUint32(buf[0x0C:], nextUnusedPage)

	off := 0x10
	for _, t := range tables {
		binary.LittleEndian.PutUint32(buf[off:], t.FirstCounter)
		binary.LittleEndian.PutUint32(buf[off+4:], t.IndexPage)
		binary.LittleEndian.PutUint32(buf[off+8:], t.LastDataPage)
		binary.LittleEndian.PutUint32(buf[off+12:], t.TableType)
		off += 16
	}
	return buf
}
