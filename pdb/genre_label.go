package pdb

import "github.com/xilver1/rekord-export/dsstring"

// buildGenreRow and buildLabelRow share the simplest row shape in this
// format: a u32 id followed by a single DeviceSQL name string.

func buildGenreRow(id uint32, name string) []byte {
	return buildIDNameRow(id, name)
}

func buildLabelRow(id uint32, name string) []byte {
	return buildIDNameRow(id, name)
}

func buildIDNameRow(id uint32, name string) []byte {
	row := pack([]field{u32("id", id)})
	return append(row, dsstring.Encode(name)...)
}
