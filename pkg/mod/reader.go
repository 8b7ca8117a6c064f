package mod

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// reader extracts fixed width fields from a module buffer. The first short
// read stores an error and turns every later read into a no-op, so callers
// check err once per section.
type reader struct {
	data   []byte
	offset int
	err    error
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) take(field string, n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.offset+n > len(r.data) {
		r.err = &UnexpectedEOFError{Field: field, Offset: r.offset, Want: n, Have: len(r.data) - r.offset}
		return nil
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b
}

func (r *reader) readU8(field string) uint8 {
	b := r.take(field, 1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) readI8(field string) int8 {
	return int8(r.readU8(field))
}

func (r *reader) readU16BE(field string) uint16 {
	b := r.take(field, 2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// readBytes returns a copy of the next n bytes
func (r *reader) readBytes(field string, n int) []byte {
	b := r.take(field, n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// readText decodes the next n bytes as ISO-8859-1, so every byte maps to
// exactly one rune and back
func (r *reader) readText(field string, n int) string {
	b := r.take(field, n)
	if b == nil {
		return ""
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		r.err = err
		return ""
	}
	return string(text)
}
