package mod

import (
	"fmt"
	"sort"
)

// FrequencyTable holds the ProTracker periods of octaves 1 to 3 in
// ascending order, B-3 first
var FrequencyTable = []int{
	113, 120, 127, 135, 143, 151, 160, 170, 180, 190, 202, 214,
	226, 240, 254, 269, 285, 302, 320, 339, 360, 381, 404, 428,
	453, 480, 508, 538, 570, 604, 640, 678, 720, 762, 808, 856,
}

// NoteTable names the semitones of an octave from the top down, matching
// the order of FrequencyTable
var NoteTable = []string{"B-", "A#", "A-", "G#", "G-", "F#", "F-", "E-", "D#", "D-", "C#", "C-"}

// IsStandardPeriod reports whether period is silent or one of the 36
// ProTracker notes
func IsStandardPeriod(period uint16) bool {
	if period == 0 {
		return true
	}
	idx := sort.SearchInts(FrequencyTable, int(period))
	return idx < len(FrequencyTable) && FrequencyTable[idx] == int(period)
}

// NoteName returns the tracker notation of a period, "C-3" for 214. It
// returns "" for silence and for periods outside the standard table.
func NoteName(period uint16) string {
	if period == 0 {
		return ""
	}
	idx := sort.SearchInts(FrequencyTable, int(period))
	if idx == len(FrequencyTable) || FrequencyTable[idx] != int(period) {
		return ""
	}
	octave := 3 - idx/len(NoteTable)
	return fmt.Sprintf("%s%d", NoteTable[idx%len(NoteTable)], octave)
}

// HasStandardNotesOnly reports whether every item in the active part of
// the song uses a standard period
func (m *Module) HasStandardNotesOnly() bool {
	for _, patternIdx := range m.Positions() {
		if int(patternIdx) >= len(m.Patterns) {
			continue
		}
		pattern := m.Patterns[patternIdx]
		for ch := range pattern.Channels {
			for _, item := range pattern.Channels[ch].Items {
				if !IsStandardPeriod(item.Period) {
					return false
				}
			}
		}
	}
	return true
}
