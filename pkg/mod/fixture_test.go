package mod

import (
	"bytes"
	"encoding/binary"
)

// fixtureSample describes one sample header of a hand assembled module
type fixtureSample struct {
	name         string
	length       int
	fineTune     int8
	volume       uint8
	repeatStart  int
	repeatLength int
}

// rinkADinkSamples mirrors the header values of the rink-a-dink module
var rinkADinkSamples = map[int]fixtureSample{
	0:  {name: "Rink a Dink", length: 5170, volume: 64, repeatLength: 2},
	3:  {name: "snare", length: 1200, fineTune: -3, volume: 48, repeatLength: 2},
	16: {name: "bass", length: 800, fineTune: 5, volume: 40, repeatStart: 200, repeatLength: 400},
}

// buildRinkADink assembles a module byte by byte without using the
// encoder, so decoding it checks the layout independently
func buildRinkADink(tag string) []byte {
	var buf bytes.Buffer

	title := make([]byte, titleLength)
	copy(title, "rink-a-dink")
	buf.Write(title)

	for idx := 0; idx < NumSamples; idx++ {
		s := rinkADinkSamples[idx]
		name := make([]byte, sampleNameLength)
		copy(name, s.name)
		buf.Write(name)
		_ = binary.Write(&buf, binary.BigEndian, uint16(s.length/2))
		buf.WriteByte(byte(s.fineTune))
		buf.WriteByte(s.volume)
		_ = binary.Write(&buf, binary.BigEndian, uint16(s.repeatStart/2))
		_ = binary.Write(&buf, binary.BigEndian, uint16(s.repeatLength/2))
	}

	songLength := 50
	buf.WriteByte(byte(songLength))
	buf.WriteByte(0x7f)

	positions := make([]byte, NumPositions)
	order := []byte{23, 0, 8}
	for i := 0; i < songLength; i++ {
		if i < len(order) {
			positions[i] = order[i]
		} else {
			positions[i] = byte(i % 20)
		}
	}
	buf.Write(positions)
	buf.WriteString(tag)

	numPatterns := 24
	for p := 0; p < numPatterns; p++ {
		pattern := make([]byte, NumRows*NumChannels*noteSize)
		if p == 0 {
			// row 0 channel 0: sample 17, period 214, set speed 3
			copy(pattern[0:], []byte{0x10, 0xd6, 0x1f, 0x03})
			// row 32 channel 1: sample 4, period 214
			copy(pattern[32*16+4:], []byte{0x00, 0xd6, 0x40, 0x00})
		} else {
			copy(pattern[(p%NumRows)*16:], []byte{0x01, byte(p), 0xcd, byte(p)})
		}
		buf.Write(pattern)
	}

	for idx := 0; idx < NumSamples; idx++ {
		s := rinkADinkSamples[idx]
		for i := 0; i < s.length; i++ {
			buf.WriteByte(byte(i*7 + idx))
		}
	}

	return buf.Bytes()
}
