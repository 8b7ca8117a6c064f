package mod

import "strings"

const (
	// NumSamples is the fixed number of sample slots in a module
	NumSamples = 31
	// NumPositions is the fixed size of the song position table
	NumPositions = 128
	// NumRows is the number of rows in every pattern
	NumRows = 64
	// NumChannels is the number of voices in every pattern
	NumChannels = 4
	// MaxPatterns bounds the pattern indices a position may reference
	MaxPatterns = 100
	// MaxSampleLength is the longest sample, in bytes, a 16-bit word count
	// can describe
	MaxSampleLength = 0xffff * 2

	titleLength      = 20
	sampleNameLength = 22
	tagLength        = 4
	noteSize         = 4
)

// Module represents one song: metadata, samples, song order and patterns
type Module struct {
	// Name is the raw 20 byte title, null padding included
	Name    string
	Samples [NumSamples]Sample
	// SongLength is the number of active entries in SongPositions
	SongLength    uint8
	SongPositions [NumPositions]uint8
	Patterns      []*Pattern
	// Unknown is stored after the song length. Some trackers use it as a
	// restart position; it is kept verbatim and never interpreted.
	Unknown uint8
}

// Sample stores the raw sample data as well as loop and volume metadata.
// Length, RepeatStart and RepeatLength are in bytes.
type Sample struct {
	Name         string
	Length       int
	FineTune     int8
	Volume       uint8
	RepeatStart  int
	RepeatLength int
	Data         []int8
}

// PatternItem defines a sample, period, and effect
type PatternItem struct {
	SampleNumber uint8
	Period       uint16
	Command      Command
	CommandValue uint8
}

// Channel is one voice of a pattern, one item per row
type Channel struct {
	Items [NumRows]PatternItem
}

// Pattern defines the 64 rows of the 4 channels that make up a pattern
type Pattern struct {
	Channels [NumChannels]Channel
}

// NewModule returns an empty module with 31 empty samples, every song
// position set to zero and no patterns
func NewModule() *Module {
	return &Module{}
}

// NewPattern returns a pattern with every item zeroed
func NewPattern() *Pattern {
	return &Pattern{}
}

// GetSample returns the sample slot for a 1 based sample number
func (m *Module) GetSample(sampleNumber int) (*Sample, error) {
	if sampleNumber < 1 || sampleNumber > NumSamples {
		return nil, &SampleRangeError{Number: sampleNumber}
	}
	return &m.Samples[sampleNumber-1], nil
}

// Title returns the module name without its null or space padding
func (m *Module) Title() string {
	return trimPadding(m.Name)
}

// Title returns the sample name without its null or space padding
func (s *Sample) Title() string {
	return trimPadding(s.Name)
}

func trimPadding(text string) string {
	return strings.TrimRight(text, "\x00 ")
}

// Row returns the items of every channel at the given row
func (p *Pattern) Row(row int) [NumChannels]PatternItem {
	var items [NumChannels]PatternItem
	for ch := range p.Channels {
		items[ch] = p.Channels[ch].Items[row]
	}
	return items
}

// Validate checks that every live song position references a stored pattern
func (m *Module) Validate() error {
	for i := 0; i < int(m.SongLength) && i < NumPositions; i++ {
		if int(m.SongPositions[i]) >= len(m.Patterns) {
			return &PatternMissingError{Position: i, Pattern: int(m.SongPositions[i]), Stored: len(m.Patterns)}
		}
	}
	return nil
}

// maxPosition returns the highest pattern index in the whole position
// table, trailing entries included
func (m *Module) maxPosition() int {
	highest := 0
	for _, pos := range m.SongPositions {
		if int(pos) > highest {
			highest = int(pos)
		}
	}
	return highest
}
