// Package pdb implements the DeviceSQL-style paged database writer
// (export.pdb): it interns the library's artists, albums, genres, labels,
// and keys, then drives page.TableBuilder to emit the 20 fixed
// tables spec.md §4.3 requires, in order, followed by the file header.
package pdb

import (
	"fmt"

	"github.com/xilver1/rekord-export/page"
	"github.com/xilver1/rekord-export/track"
)

// Table type indices, in file-header order (spec.md §4.3).
const (
	tableTracks = iota
	tableGenres
	tableArtists
	tableAlbums
	tableLabels
	tableKeys
	tableColors
	tablePlaylistTree
	tablePlaylistEntries
	table9
	table10
	tableHistoryPlaylists
	tableHistoryEntries
	tableArtwork
	table14
	table15
	tableColumns
	tableUK17
	table18
	tableHistory
)

// historyTables carries the small-field "history" marker (u16=1 at page
// offset 0x26) and the 0x34 data-page flag; see page.FlagDataTrackHistory.
var historyTables = map[int]bool{
	tableTracks:           true,
	tableHistoryPlaylists: true,
	tableHistoryEntries:   true,
	tableHistory:          true,
}

// Build renders a complete export.pdb file for tracks and playlists.
func Build(tracks []track.TrackAnalysis, playlists []track.Playlist) []byte {
	artists := newIntern()
	genres := newIntern()
	labels := newIntern()
	var albums albumIntern
	keys := newKeyIntern()

	for _, t := range tracks {
		artists.id(t.Artist)
		genres.id(t.Genre)
		labels.id(t.Label)
		albums.id(t.Album, artists.id(t.Artist))
		if t.Key != nil {
			keys.id(*t.Key)
		}
	}

	var out []byte
	next := uint32(1) // page 0 is reserved for the file header
	var pointers [page.NumTables]page.TablePointer

	addTable := func(typ int, rows func(tb *page.TableBuilder)) {
		flag := byte(page.FlagDataNormal)
		if historyTables[typ] {
			flag = page.FlagDataTrackHistory
		}
		tb := page.NewTableBuilder(next, flag, historyTables[typ], uint32(typ))
		rows(tb)
		pages, ptr, nextFree := tb.Finish()
		out = append(out, pages...)
		pointers[typ] = ptr
		next = nextFree
	}

	addTable(tableTracks, func(tb *page.TableBuilder) {
		for _, t := range tracks {
			artistID := artists.id(t.Artist)
			albumID := albums.id(t.Album, artistID)
			genreID := genres.id(t.Genre)
			labelID := labels.id(t.Label)
			var keyID uint32
			if t.Key != nil {
				keyID = keys.id(*t.Key)
			}
			mustAdd(tb, buildTrackRow(t, artistID, albumID, genreID, labelID, keyID, 0))
		}
	})

	addTable(tableGenres, func(tb *page.TableBuilder) {
		for i, name := range genres.names() {
			mustAdd(tb, buildGenreRow(uint32(i+1), name))
		}
	})

	addTable(tableArtists, func(tb *page.TableBuilder) {
		for i, name := range artists.names() {
			mustAdd(tb, buildArtistRow(uint32(i+1), name))
		}
	})

	addTable(tableAlbums, func(tb *page.TableBuilder) {
		for i, a := range albums.entries() {
			mustAdd(tb, buildAlbumRow(uint32(i+1), a.artistID, a.name))
		}
	})

	addTable(tableLabels, func(tb *page.TableBuilder) {
		for i, name := range labels.names() {
			mustAdd(tb, buildLabelRow(uint32(i+1), name))
		}
	})

	addTable(tableKeys, func(tb *page.TableBuilder) {
		for i, k := range keys.entries() {
			mustAdd(tb, buildKeyRow(uint32(i+1), k))
		}
	})

	addTable(tableColors, func(tb *page.TableBuilder) {
		for _, row := range buildColorRows() {
			mustAdd(tb, row)
		}
	})

	addTable(tablePlaylistTree, func(tb *page.TableBuilder) {
		for _, pl := range playlists {
			mustAdd(tb, buildPlaylistTreeRow(pl.ParentID, pl.SortOrder, pl.ID, pl.IsFolder, pl.Name))
		}
	})

	addTable(tablePlaylistEntries, func(tb *page.TableBuilder) {
		for _, pl := range playlists {
			for i, trackID := range pl.TrackIDs {
				mustAdd(tb, buildPlaylistEntryRow(uint32(i+1), trackID, pl.ID))
			}
		}
	})

	addTable(table9, emptyTable)
	addTable(table10, emptyTable)
	addTable(tableHistoryPlaylists, emptyTable)
	addTable(tableHistoryEntries, emptyTable)

	addTable(tableArtwork, emptyTable) // no artwork source modeled; see DESIGN.md

	addTable(table14, emptyTable)
	addTable(table15, emptyTable)
	addTable(tableColumns, emptyTable)

	addTable(tableUK17, func(tb *page.TableBuilder) {
		for _, row := range buildUK17Rows() {
			mustAdd(tb, row)
		}
	})

	addTable(table18, emptyTable)
	addTable(tableHistory, emptyTable)

	header := page.BuildFileHeader(next, pointers)
	return append(header, out...)
}

func emptyTable(tb *page.TableBuilder) {}

// mustAdd panics on page.ErrRowTooLarge, which indicates a row exceeds a
// single empty page and is a programming error in a row builder, not a
// runtime condition callers can recover from.
func mustAdd(tb *page.TableBuilder, row []byte) {
	if err := tb.AddRow(row); err != nil {
		panic(fmt.Sprintf("pdb: %v", err))
	}
}
