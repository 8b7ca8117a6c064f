package mod

// IsLooped reports whether the sample has a repeat region
func (s *Sample) IsLooped() bool {
	return s.RepeatLength > 2
}

// IsEmpty reports whether the sample is a placeholder
func (s *Sample) IsEmpty() bool {
	return s.Length <= 2
}

// Clear turns the sample into a placeholder. Name and volume are kept.
func (s *Sample) Clear() {
	s.Data = make([]int8, 2)
	s.Length = 0
	s.RepeatStart = 0
	s.RepeatLength = 2
	s.FineTune = 0
}

// ZeroLeading silences the first two bytes of a one-shot sample, which
// players click on when they are not zero
func (s *Sample) ZeroLeading() {
	if s.Length > 2 && s.RepeatLength == 2 && s.RepeatStart == 0 && len(s.Data) >= 2 {
		s.Data[0] = 0
		s.Data[1] = 0
	}
}

// OptimiseLooped drops the data after the loop end of a looped sample
func (s *Sample) OptimiseLooped() {
	if !s.IsLooped() {
		return
	}
	newLength := s.RepeatStart + s.RepeatLength
	if newLength < s.Length {
		s.Data = clampSlice(s.Data, 0, newLength)
		s.Length = newLength
	}
}

// TruncateToLoop keeps two bytes before the loop start and the loop body,
// and moves the loop start to 2. It reports whether the sample changed.
func (s *Sample) TruncateToLoop() bool {
	if !s.IsLooped() || s.RepeatStart <= 2 {
		return false
	}
	start := s.RepeatStart - 2
	s.Data = clampSlice(s.Data, start, start+s.RepeatLength+2)
	s.Length = len(s.Data)
	s.RepeatStart = 2
	return true
}

// Pad grows the sample to the next multiple of blockSize. A looped sample
// keeps cycling through its repeat region into the padding, a one-shot
// sample is padded with silence.
func (s *Sample) Pad(blockSize int) {
	if s.Length <= 2 || blockSize < 1 {
		return
	}
	newLength := (s.Length + blockSize - 1) / blockSize * blockSize
	newData := make([]int8, newLength)
	repeatEnd := s.RepeatStart + s.RepeatLength

	pos := 0
	for i := range newData {
		if pos < len(s.Data) {
			newData[i] = s.Data[pos]
		}
		pos++
		if s.IsLooped() && pos == repeatEnd {
			pos = s.RepeatStart
		}
	}
	s.Length = newLength
	s.Data = newData
}

// OptimiseLoopedAllSamples runs OptimiseLooped on every sample
func (m *Module) OptimiseLoopedAllSamples() {
	for idx := range m.Samples {
		m.Samples[idx].OptimiseLooped()
	}
}

// PadAllSamples runs Pad on every sample
func (m *Module) PadAllSamples(blockSize int) {
	for idx := range m.Samples {
		m.Samples[idx].Pad(blockSize)
	}
}

// ZeroLeadingAllSamples runs ZeroLeading on every sample
func (m *Module) ZeroLeadingAllSamples() {
	for idx := range m.Samples {
		m.Samples[idx].ZeroLeading()
	}
}

// TruncateAllToLoop runs TruncateToLoop on every sample and returns how
// many samples changed
func (m *Module) TruncateAllToLoop() int {
	truncated := 0
	for idx := range m.Samples {
		if m.Samples[idx].TruncateToLoop() {
			truncated++
		}
	}
	return truncated
}

// clampSlice copies data[from:to] with both bounds clamped to the data
func clampSlice(data []int8, from, to int) []int8 {
	if to > len(data) {
		to = len(data)
	}
	if from > to {
		from = to
	}
	out := make([]int8, to-from)
	copy(out, data[from:to])
	return out
}
