// Package validate independently re-reads an emitted PDB buffer and asserts
// its self-consistency: page counts, the file-header table pointers, the
// per-table data page chains, and per-page row counts and flags (spec.md
// §4.7). It never assumes the buffer came from this module's own writer.
package validate

import (
	"encoding/binary"
	"fmt"

	"github.com/xilver1/rekord-export/page"
)

// Result summarizes a successful validation.
type Result struct {
	NumTables      int
	NextUnusedPage uint32
	// RowCounts maps table index (position in the fixed table order, 0-19) to
	// the accumulated num_rows across every data page in that table.
	RowCounts [page.NumTables]int
}

// allowedFlags are the only page_flags byte values a data or index page may
// carry (spec.md §4.7).
var allowedFlags = map[byte]bool{
	0x00: true,
	page.FlagDataNormal:       true,
	page.FlagDataTrackHistory: true,
	page.FlagIndex:            true,
}

// Validate re-parses buf as a PDB export and returns a Result, or the first
// inconsistency found. It performs no repair and stops at the first error.
func Validate(buf []byte) (*Result, error) {
	if len(buf) < page.Size {
		return nil, fmt.Errorf("validate: buffer too small: %d bytes, want >= %d", len(buf), page.Size)
	}
	if len(buf)%page.Size != 0 {
		return nil, fmt.Errorf("validate: buffer size %d is not a multiple of %d", len(buf), page.Size)
	}
	numPages := len(buf) / page.Size

	header := buf[:page.Size]
	pageSize := binary.LittleEndian.Uint32(header[0x04:])
	if pageSize != page.Size {
		return nil, fmt.Errorf("validate: page_size = %d, want %d", pageSize, page.Size)
	}
	numTables := int(binary.LittleEndian.Uint32(header[0x08:]))
	if numTables != page.NumTables {
		return nil, fmt.Errorf("validate: num_tables = %d, want %d", numTables, page.NumTables)
	}
	nextUnusedPage := binary.LittleEndian.Uint32(header[0x0C:])
	if int(nextUnusedPage) > numPages {
		return nil, fmt.Errorf("validate: next_unused_page = %d exceeds actual page count %d", nextUnusedPage, numPages)
	}

	res := &Result{NumTables: numTables, NextUnusedPage: nextUnusedPage}

	off := 0x10
	for i := 0; i < numTables; i++ {
		indexPage := binary.LittleEndian.Uint32(header[off+4:])
		off += 16
		if indexPage == 0 {
			continue
		}
		rows, err := walkTable(buf, numPages, indexPage)
		if err != nil {
			return nil, fmt.Errorf("validate: table %d: %w", i, err)
		}
		res.RowCounts[i] = rows
	}
	return res, nil
}

// walkTable checks a table's index page, then follows the data pages' own
// next_page chain, summing num_rows and checking each page's own
// consistency. For a table with rows (body offset 0x26's active flag) the
// chain starts at the index page body's first-data-page field (0x2C); for
// an empty table, whose body carries the sentinel there instead, it starts
// at the lone empty data page that follows the index page. The index
// page's own common-header next_page is always a terminator and plays no
// part in locating the data chain (spec.md §4.2).
func walkTable(buf []byte, numPages int, indexPage uint32) (int, error) {
	if int(indexPage) >= numPages {
		return 0, fmt.Errorf("index page %d out of range (have %d pages)", indexPage, numPages)
	}
	idx := pageAt(buf, indexPage)
	if err := checkCommonHeader(idx, indexPage); err != nil {
		return 0, err
	}
	if idx[0x1B] != page.FlagIndex {
		return 0, fmt.Errorf("page %d: expected index page flags, got 0x%02X", indexPage, idx[0x1B])
	}
	visited := map[uint32]bool{indexPage: true}
	total := 0
	cur := binary.LittleEndian.Uint32(idx[0x2C:])
	if binary.LittleEndian.Uint16(idx[0x26:]) == 0 {
		cur = indexPage + 1
	}
	for {
		if int(cur) >= numPages {
			return 0, fmt.Errorf("page index %d out of range (have %d pages)", cur, numPages)
		}
		if visited[cur] {
			return 0, fmt.Errorf("cycle detected at page %d", cur)
		}
		visited[cur] = true

		p := pageAt(buf, cur)
		if err := checkCommonHeader(p, cur); err != nil {
			return 0, err
		}

		_, numRows := page.UnpackRowCounts(p[0x18:0x1B])
		total += numRows

		next := binary.LittleEndian.Uint32(p[0x08:])
		if next == 0xFFFFFFFF {
			break
		}
		cur = next
	}
	return total, nil
}

func pageAt(buf []byte, index uint32) []byte {
	start := int(index) * page.Size
	return buf[start : start+page.Size]
}

// checkCommonHeader asserts the page-local invariants spec.md §4.7 lists:
// the stored page index matches file position, the flag byte is one of
// the known values, and used_size fits within the page.
func checkCommonHeader(p []byte, wantIndex uint32) error {
	storedIndex := binary.LittleEndian.Uint32(p[0x04:])
	if storedIndex != wantIndex {
		return fmt.Errorf("page %d: stored page index %d does not match file position", wantIndex, storedIndex)
	}
	flag := p[0x1B]
	if !allowedFlags[flag] {
		return fmt.Errorf("page %d: invalid page_flags byte 0x%02X", wantIndex, flag)
	}
	usedSize := binary.LittleEndian.Uint16(p[0x1E:])
	if int(usedSize) > page.Size-page.HeaderLen {
		return fmt.Errorf("page %d: used_size %d exceeds %d", wantIndex, usedSize, page.Size-page.HeaderLen)
	}
	return nil
}
