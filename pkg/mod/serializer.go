package mod

// Encode serialises m. For a module produced by Decode the output is
// byte-identical to the decoded input. Samples with a length of 2 or less
// contribute no data bytes.
func Encode(m *Module) []byte {
	w := &writer{}

	w.writeText(m.Name, titleLength)
	for idx := range m.Samples {
		writeSampleHeader(w, &m.Samples[idx])
	}

	w.writeByte(m.SongLength)
	w.writeByte(m.Unknown)
	w.writeBytes(append([]byte(nil), m.SongPositions[:]...))
	w.writeText(m.Tag(), tagLength)

	for _, p := range m.Patterns {
		writePattern(w, p)
	}

	for idx := range m.Samples {
		sample := &m.Samples[idx]
		if sample.Length > 2 {
			w.writeBytes(pcmToBytes(sample.Data))
		}
	}

	return w.Bytes()
}

// Tag returns the format tag Encode writes: M!K! as soon as a position
// needs more than 64 patterns, M.K. otherwise
func (m *Module) Tag() string {
	for _, pos := range m.SongPositions {
		if pos > 63 {
			return TagExtended
		}
	}
	return TagStandard
}

func writeSampleHeader(w *writer, s *Sample) {
	w.writeText(s.Name, sampleNameLength)
	w.writeU16BE(uint16(s.Length / 2))
	w.writeByte(uint8(s.FineTune))
	w.writeByte(s.Volume)
	w.writeU16BE(uint16(s.RepeatStart / 2))
	w.writeU16BE(uint16(s.RepeatLength / 2))
}

func writePattern(w *writer, p *Pattern) {
	buf := make([]byte, 0, NumRows*NumChannels*noteSize)
	for row := 0; row < NumRows; row++ {
		for ch := 0; ch < NumChannels; ch++ {
			buf = appendNote(buf, p.Channels[ch].Items[row])
		}
	}
	w.writeBytes(buf)
}

func appendNote(buf []byte, item PatternItem) []byte {
	return append(buf,
		(item.SampleNumber&0xf0)|uint8(item.Period>>8)&0x0f,
		uint8(item.Period&0xff),
		uint8(item.Command&0x0f)|(item.SampleNumber&0x0f)<<4,
		item.CommandValue,
	)
}

func pcmToBytes(pcm []int8) []byte {
	data := make([]byte, len(pcm))
	for pos, v := range pcm {
		data[pos] = byte(v)
	}
	return data
}
