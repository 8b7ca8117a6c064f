package mod

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// writer accumulates encoded chunks until Bytes joins them
type writer struct {
	chunks [][]byte
}

func (w *writer) writeBytes(raw []byte) {
	w.chunks = append(w.chunks, raw)
}

func (w *writer) writeByte(value uint8) {
	w.writeBytes([]byte{value})
}

func (w *writer) writeU16BE(value uint16) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, value)
	w.writeBytes(b)
}

// writeText encodes value as ISO-8859-1 into exactly width bytes. Longer
// values are truncated, shorter ones are zero padded. Runes outside
// ISO-8859-1 become the charmap substitution byte 0x1A.
func (w *writer) writeText(value string, width int) {
	buf := make([]byte, width)
	// ReplaceUnsupported substitutes every unencodable rune, so the encoder
	// never fails
	encoded, _ := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).String(value)
	copy(buf, encoded)
	w.writeBytes(buf)
}

// Bytes concatenates every chunk written so far
func (w *writer) Bytes() []byte {
	return bytes.Join(w.chunks, nil)
}
