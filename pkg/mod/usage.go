package mod

// IsPatternUsed reports whether the pattern appears in the active part of
// the song, positions at or beyond SongLength are ignored
func (m *Module) IsPatternUsed(patternNumber int) bool {
	for _, pos := range m.Positions() {
		if int(pos) == patternNumber {
			return true
		}
	}
	return false
}

// IsSampleUsed reports whether any item of any stored pattern plays the
// 1 based sample number
func (m *Module) IsSampleUsed(sampleNumber int) bool {
	for _, p := range m.Patterns {
		if p.IsSampleUsed(sampleNumber) {
			return true
		}
	}
	return false
}

// IsSampleUsed reports whether any channel of the pattern plays the sample
func (p *Pattern) IsSampleUsed(sampleNumber int) bool {
	for ch := range p.Channels {
		if p.Channels[ch].IsSampleUsed(sampleNumber) {
			return true
		}
	}
	return false
}

// IsSampleUsed reports whether any row of the channel plays the sample
func (c *Channel) IsSampleUsed(sampleNumber int) bool {
	for _, item := range c.Items {
		if int(item.SampleNumber) == sampleNumber {
			return true
		}
	}
	return false
}

// UsedPatterns returns the distinct pattern indices of the active song
// positions in ascending order
func (m *Module) UsedPatterns() []int {
	var seen [256]bool
	for _, pos := range m.Positions() {
		seen[pos] = true
	}
	var used []int
	for idx, ok := range seen {
		if ok {
			used = append(used, idx)
		}
	}
	return used
}

// UsedSamples returns the 1 based sample numbers referenced by any stored
// pattern in ascending order
func (m *Module) UsedSamples() []int {
	var used []int
	for n := 1; n <= NumSamples; n++ {
		if m.IsSampleUsed(n) {
			used = append(used, n)
		}
	}
	return used
}

// Positions returns the live part of the song position table, SongLength
// clamped to the table size
func (m *Module) Positions() []uint8 {
	length := int(m.SongLength)
	if length > NumPositions {
		length = NumPositions
	}
	return m.SongPositions[:length]
}
