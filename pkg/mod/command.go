package mod

import "fmt"

// Command is the 4 bit effect opcode of a pattern item
type Command uint8

const (
	// Arpeggio 0xy: x first halfnote add, y second. 000 means no effect.
	Arpeggio Command = iota
	// SlideUp 1xx: upspeed
	SlideUp
	// SlideDown 2xx: downspeed
	SlideDown
	// TonePortamento 3xx: up/down speed
	TonePortamento
	// Vibrato 4xy: x speed, y depth
	Vibrato
	// TonePortamentoVolumeSlide 5xy: x upspeed, y downspeed
	TonePortamentoVolumeSlide
	// VibratoVolumeSlide 6xy: x upspeed, y downspeed
	VibratoVolumeSlide
	// Tremolo 7xy: x speed, y depth
	Tremolo
	// UnusedSync 8xx: not used by ProTracker, some demos use it for sync
	UnusedSync
	// SampleOffset 9xx: offset (23 -> 2300)
	SampleOffset
	// VolumeSlide Axy: x upspeed, y downspeed
	VolumeSlide
	// PositionJump Bxx: song position
	PositionJump
	// SetVolume Cxx: volume, 00-40
	SetVolume
	// PatternBreak Dxx: break position in next pattern
	PatternBreak
	// Extended Exy: sub command x with argument y
	Extended
	// SetSpeed Fxx: speed (00-1F) / tempo (20-FF)
	SetSpeed
)

var commandNames = [...]string{
	"Arpeggio",
	"SlideUp",
	"SlideDown",
	"TonePortamento",
	"Vibrato",
	"TonePortamentoVolumeSlide",
	"VibratoVolumeSlide",
	"Tremolo",
	"UnusedSync",
	"SampleOffset",
	"VolumeSlide",
	"PositionJump",
	"SetVolume",
	"PatternBreak",
	"Extended",
	"SetSpeed",
}

// Valid reports whether c is one of the 16 opcodes
func (c Command) Valid() bool {
	return c <= SetSpeed
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
	return commandNames[c]
}
