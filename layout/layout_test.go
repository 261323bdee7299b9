package layout

import "testing"

func TestAnalyzePath(t *testing.T) {
	cases := []struct {
		id   uint32
		want string
	}{
		{1, "PIONEER/USBANLZ/P000/00000001/ANLZ0000.DAT"},
		{0x100, "PIONEER/USBANLZ/P001/00000100/ANLZ0000.DAT"},
	}
	for _, c := range cases {
		if got := AnalyzePath(c.id); got != c.want {
			t.Errorf("AnalyzePath(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestArtworkFolder(t *testing.T) {
	cases := []struct {
		id   uint32
		want uint32
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
	}
	for _, c := range cases {
		if got := ArtworkFolder(c.id); got != c.want {
			t.Errorf("ArtworkFolder(%d) = %d, want %d", c.id, got, c.want)
		}
	}
}
