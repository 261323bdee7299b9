package page

// TableBuilder drives one table's page allocation: an index page followed
// by a chain of data pages, built in the order spec.md §4.3 requires
// (index page first, reserving its page index, then data pages as rows are
// appended).
type TableBuilder struct {
	flag      byte
	history   bool
	tableType uint32

	nextPage uint32 // page index for the next page this builder allocates
	index    uint32 // this table's index page

	pages  [][]byte // finalized data pages, in order
	cur    *dataPage
	curIdx uint32

	numRows int
}

// NewTableBuilder starts a table whose index page occupies startPage.
// flag selects FlagDataNormal or FlagDataTrackHistory for the table's data
// pages; history marks the track/history small-field convention; tableType
// is the table's position in the fixed 20-table order (spec.md §4.3),
// recorded in the returned TablePointer.
func NewTableBuilder(startPage uint32, flag byte, history bool, tableType uint32) *TableBuilder {
	tb := &TableBuilder{flag: flag, history: history, tableType: tableType, index: startPage, nextPage: startPage + 1}
	tb.curIdx = tb.nextPage
	tb.nextPage++
	tb.cur = newDataPage(tb.curIdx, flag, history)
	return tb
}

// AddRow appends row to the table, rolling over to a new data page first
// if it would not fit in the current one.
func (tb *TableBuilder) AddRow(row []byte) error {
	if !tb.cur.fits(len(row)) {
		if len(tb.cur.rowOffsets) == 0 {
			return ErrRowTooLarge
		}
		tb.rollPage()
	}
	if !tb.cur.fits(len(row)) {
		return ErrRowTooLarge
	}
	tb.cur.addRow(row)
	tb.numRows++
	return nil
}

func (tb *TableBuilder) rollPage() {
	tb.pages = append(tb.pages, tb.cur.finalize(tb.nextPage))
	tb.curIdx = tb.nextPage
	tb.nextPage++
	tb.cur = newDataPage(tb.curIdx, tb.flag, tb.history)
}

// Finish finalizes all data pages (terminating the chain) and the index
// page, returning the concatenated page bytes in file order, the table
// pointer to record in the file header, and the next free page index.
func (tb *TableBuilder) Finish() (pages []byte, pointer TablePointer, nextFree uint32) {
	tb.pages = append(tb.pages, tb.cur.finalize(terminator))

	hasData := tb.numRows > 0
	firstDataPage := tb.index + 1
	idx := buildIndexPage(tb.index, hasData, firstDataPage, tb.numRows)

	out := make([]byte, 0, Size*(1+len(tb.pages)))
	out = append(out, idx...)
	for _, p := range tb.pages {
		out = append(out, p...)
	}

	// spec.md §4.2: an empty table's last_data_page equals its index_page,
	// even though one (empty) data page is still physically allocated
	// after it.
	lastDataPage := tb.index
	if hasData {
		lastDataPage = tb.curIdx
	}
	pointer = TablePointer{
		FirstCounter: 0,
		IndexPage:    tb.index,
		LastDataPage: lastDataPage,
		TableType:    tb.tableType,
	}
	return out, pointer, tb.nextPage
}
