package track

import "testing"

func TestKeyRoundTrip(t *testing.T) {
	for id := uint8(1); id <= 24; id++ {
		k := KeyFromID(id)
		got := k.ToID()
		if got != id {
			t.Errorf("KeyFromID(%d).ToID() = %d, want %d", id, got, id)
		}
	}
}

func TestPreviewColumnRoundTrip(t *testing.T) {
	for h := uint8(0); h <= 31; h++ {
		for w := uint8(0); w <= 7; w++ {
			c := PreviewColumn{Height: h, Whiteness: w}
			got := DecodePreviewColumn(c.Encode())
			if got != c {
				t.Errorf("round-trip PreviewColumn{%d,%d}: got %+v", h, w, got)
			}
		}
	}
}

func TestColorEntryRoundTrip(t *testing.T) {
	cases := []ColorEntry{
		{Red: 5, Green: 3, Blue: 7, Height: 20},
		{Red: 0, Green: 0, Blue: 0, Height: 0},
		{Red: 7, Green: 7, Blue: 7, Height: 31},
	}
	for _, e := range cases {
		got := DecodeColorEntry(e.Encode())
		if got != e {
			t.Errorf("round-trip ColorEntry %+v: got %+v", e, got)
		}
	}
}

func TestColorEntryEncodeMatchesFormula(t *testing.T) {
	e := ColorEntry{Red: 5, Green: 3, Blue: 7, Height: 20}
	want := uint16(5)<<13 | uint16(3)<<10 | uint16(7)<<7 | uint16(20)<<2
	if got := e.Encode(); got != want {
		t.Errorf("Encode() = %#04x, want %#04x", got, want)
	}
}

func TestColorPreviewColumnRoundTrip(t *testing.T) {
	c := ColorPreviewColumn{Height: 10, Luminance: 20, Blue: 30, Red: 40, Green: 50, Blue2: 60}
	got := DecodeColorPreviewColumn(c.Encode())
	if got != c {
		t.Errorf("round-trip ColorPreviewColumn: got %+v, want %+v", got, c)
	}
}
