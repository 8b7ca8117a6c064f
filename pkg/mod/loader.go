package mod

const (
	// TagStandard marks a module whose pattern indices stay below 64
	TagStandard = "M.K."
	// TagExtended marks a module that stores more than 64 patterns
	TagExtended = "M!K!"
)

func isKnownTag(tag string) bool {
	return tag == TagStandard || tag == TagExtended
}

// Decode parses a 31 sample, 4 channel module. It returns a *FormatError
// when the tag is not recognised and an *UnexpectedEOFError when data is
// too short for the header, the patterns or the declared sample lengths.
// Bytes after the last sample are ignored.
func Decode(data []byte) (*Module, error) {
	r := newReader(data)
	m := NewModule()

	m.Name = r.readText("title", titleLength)

	for idx := range m.Samples {
		newSample(r, &m.Samples[idx])
	}

	m.SongLength = r.readU8("song length")
	m.Unknown = r.readU8("unknown")
	for idx := range m.SongPositions {
		m.SongPositions[idx] = r.readU8("song positions")
	}

	tag := r.readText("tag", tagLength)
	if r.err != nil {
		return nil, r.err
	}
	if !isKnownTag(tag) {
		return nil, &FormatError{Tag: tag}
	}

	numPatterns := m.maxPosition() + 1
	m.Patterns = make([]*Pattern, numPatterns)
	for idx := range m.Patterns {
		m.Patterns[idx] = newPattern(r)
	}
	if r.err != nil {
		return nil, r.err
	}

	for idx := range m.Samples {
		sample := &m.Samples[idx]
		sample.Data = bytesToPCM(r.readBytes("sample data", sample.Length))
		if r.err != nil {
			return nil, r.err
		}
	}

	return m, nil
}

func newSample(r *reader, s *Sample) {
	s.Name = r.readText("sample name", sampleNameLength)
	s.Length = int(r.readU16BE("sample length")) * 2
	s.FineTune = r.readI8("sample finetune")
	s.Volume = r.readU8("sample volume")
	s.RepeatStart = int(r.readU16BE("sample repeat start")) * 2
	s.RepeatLength = int(r.readU16BE("sample repeat length")) * 2
}

func newPattern(r *reader) *Pattern {
	p := NewPattern()
	for row := 0; row < NumRows; row++ {
		for ch := 0; ch < NumChannels; ch++ {
			data := r.take("pattern data", noteSize)
			if data == nil {
				return p
			}
			p.Channels[ch].Items[row] = newNote(data)
		}
	}
	return p
}

func newNote(data []byte) PatternItem {
	return PatternItem{
		SampleNumber: (data[0] & 0xf0) | ((data[2] & 0xf0) >> 4),
		Period:       uint16(data[0]&0x0f)<<8 | uint16(data[1]),
		Command:      Command(data[2] & 0x0f),
		CommandValue: data[3],
	}
}

func bytesToPCM(data []byte) []int8 {
	pcm := make([]int8, len(data))
	for pos, b := range data {
		pcm[pos] = int8(b)
	}
	return pcm
}
