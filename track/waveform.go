package track

// Waveform bundles the three waveform representations a track carries: a
// fixed-size monochrome overview, a fixed-size color overview, and a
// variable-length high-resolution color detail stream.
type Waveform struct {
	Preview      Preview
	ColorPreview ColorPreview
	Detail       Detail
}

// PreviewColumnCount is the fixed number of columns in a Preview, regardless
// of the number of columns the analysis stage actually produced.
const PreviewColumnCount = 400

// ColorPreviewColumnCount is the fixed number of columns in a ColorPreview.
const ColorPreviewColumnCount = 1200

// DetailRate is the number of Detail color entries produced per second of
// audio.
const DetailRate = 150

// PreviewColumn is a single column of the monochrome overview waveform.
type PreviewColumn struct {
	// Height is 0..31.
	Height uint8
	// Whiteness is 0..7.
	Whiteness uint8
}

// Encode packs a PreviewColumn into its single-byte wire representation:
// height<<3 | whiteness.
func (c PreviewColumn) Encode() byte {
	return c.Height<<3 | c.Whiteness&0x07
}

// DecodePreviewColumn unpacks a single-byte wire representation into a
// PreviewColumn.
func DecodePreviewColumn(b byte) PreviewColumn {
	return PreviewColumn{
		Height:    b >> 3,
		Whiteness: b & 0x07,
	}
}

// Preview is the monochrome overview waveform: always exactly
// PreviewColumnCount columns in the wire format, regardless of how many
// columns were analyzed.
type Preview struct {
	Columns []PreviewColumn
}

// ColorEntry is a single RGB + height sample, the entry type of Detail.
type ColorEntry struct {
	// Red, Green, Blue are 0..7 (3-bit color channels).
	Red, Green, Blue uint8
	// Height is 0..31.
	Height uint8
}

// Encode packs a ColorEntry into the big-endian uint16 wire representation
// used by the PWV5 color-detail section: (red<<13)|(green<<10)|(blue<<7)|
// (height<<2). The low 2 bits are unused padding.
//
// Note: spec.md's worked example for this encoding (§8, "PWV5 entry
// round-trip") states 0xBC50 for (r=5,g=3,b=7,h=20), but mechanically
// applying spec.md §4.4's own formula to those inputs yields 0xAFD0. The
// two are irreconcilable for any single packing of 3+3+3+5 bits into 16,
// so this implementation follows the normative §4.4 format description
// over the arithmetically inconsistent worked example.
func (e ColorEntry) Encode() uint16 {
	return uint16(e.Red&0x07)<<13 | uint16(e.Green&0x07)<<10 | uint16(e.Blue&0x07)<<7 | uint16(e.Height&0x1F)<<2
}

// DecodeColorEntry unpacks a big-endian uint16 wire representation into a
// ColorEntry. It is the inverse of Encode.
func DecodeColorEntry(v uint16) ColorEntry {
	return ColorEntry{
		Red:    uint8(v>>13) & 0x07,
		Green:  uint8(v>>10) & 0x07,
		Blue:   uint8(v>>7) & 0x07,
		Height: uint8(v>>2) & 0x1F,
	}
}

// ColorPreviewColumn is one column of the color overview waveform, packed
// as six 7-bit fields in the PWV4 section.
type ColorPreviewColumn struct {
	Height     uint8
	Luminance  uint8
	Blue       uint8
	Red        uint8
	Green      uint8
	Blue2      uint8
}

// Encode packs a ColorPreviewColumn into its six-byte wire representation,
// each byte holding a 7-bit value with the top bit clear.
func (c ColorPreviewColumn) Encode() [6]byte {
	return [6]byte{
		c.Height & 0x7F,
		c.Luminance & 0x7F,
		c.Blue & 0x7F,
		c.Red & 0x7F,
		c.Green & 0x7F,
		c.Blue2 & 0x7F,
	}
}

// DecodeColorPreviewColumn unpacks a six-byte wire representation into a
// ColorPreviewColumn.
func DecodeColorPreviewColumn(b [6]byte) ColorPreviewColumn {
	return ColorPreviewColumn{
		Height:    b[0] & 0x7F,
		Luminance: b[1] & 0x7F,
		Blue:      b[2] & 0x7F,
		Red:       b[3] & 0x7F,
		Green:     b[4] & 0x7F,
		Blue2:     b[5] & 0x7F,
	}
}

// ColorPreview is the color overview waveform: always exactly
// ColorPreviewColumnCount columns in the wire format.
type ColorPreview struct {
	Columns []ColorPreviewColumn
}

// Detail is the high-resolution color waveform, sampled at DetailRate
// entries per second of audio.
type Detail struct {
	Entries []ColorEntry
}
