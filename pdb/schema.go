package pdb

// field is one named, fixed-width entry in a row's declarative schema: an
// ordered list of (name, width, value) replaces hand-written offset
// arithmetic, so a firmware revision that shifts a field only touches the
// row's schema, not scattered byte pokes (spec.md §9).
type field struct {
	name  string
	width int // 1, 2, 4, or 8 bytes
	value uint64
}

func u8(name string, v uint8) field   { return field{name, 1, uint64(v)} }
func u16(name string, v uint16) field { return field{name, 2, uint64(v)} }
func u32(name string, v uint32) field { return field{name, 4, uint64(v)} }
func u64(name string, v uint64) field { return field{name, 8, v} }

// pack serializes fields in order as little-endian integers.
func pack(fields []field) []byte {
	buf := make([]byte, 0, packedLen(fields))
	for _, f := range fields {
		for i := 0; i < f.width; i++ {
			buf = append(buf, byte(f.value>>(8*i)))
		}
	}
	return buf
}

// packedLen returns the byte length pack(fields) would produce.
func packedLen(fields []field) int {
	n := 0
	for _, f := range fields {
		n += f.width
	}
	return n
}

// reserved pads fields out to exactly totalWidth bytes with a single
// trailing zero field, used where a row's fixed header has a documented
// total length but some of its interior bytes carry no named semantics.
func reserved(fields []field, totalWidth int) []field {
	pad := totalWidth - packedLen(fields)
	if pad <= 0 {
		return fields
	}
	return append(fields, field{"reserved", pad, 0})
}
