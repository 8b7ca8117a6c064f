package mod

// RemoveUnusedSamples clears every sample slot that no pattern item plays
func (m *Module) RemoveUnusedSamples() {
	for idx := range m.Samples {
		if !m.IsSampleUsed(idx + 1) {
			m.Samples[idx].Clear()
		}
	}
}

// RemoveUnusedPatterns drops the patterns the song never plays and packs
// the rest into the lowest indices. Free slots are filled from the top:
// the lowest unused slot receives the highest used pattern and the song
// positions are remapped, so playback is unchanged. Positions past
// SongLength are zeroed first.
//
// The module is left untouched if a live position references a pattern
// that is not stored.
func (m *Module) RemoveUnusedPatterns() error {
	if err := m.Validate(); err != nil {
		return err
	}

	for i := int(m.SongLength); i < NumPositions; i++ {
		m.SongPositions[i] = 0
	}

	// song positions are bytes; indices past MaxPatterns never appear in a
	// valid module but are still tracked
	var used [256]bool
	for _, pos := range m.Positions() {
		used[pos] = true
	}

	lastUsed := func() int {
		for i := len(used) - 1; i >= 0; i-- {
			if used[i] {
				return i
			}
		}
		return -1
	}

	for current := 0; current < len(used); current++ {
		if used[current] {
			continue
		}
		last := lastUsed()
		if last <= current {
			break
		}
		m.Patterns[current] = m.Patterns[last]
		m.RemapPattern(last, current)
		used[current] = true
		used[last] = false
	}

	keep := m.maxPosition() + 1
	if keep < len(m.Patterns) {
		for i := keep; i < len(m.Patterns); i++ {
			m.Patterns[i] = nil
		}
		m.Patterns = m.Patterns[:keep]
	}
	return nil
}

// RemapPattern points every song position that plays source at dest
func (m *Module) RemapPattern(source, dest int) {
	for i, pos := range m.SongPositions {
		if int(pos) == source {
			m.SongPositions[i] = uint8(dest)
		}
	}
}
