package mod

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrFormat is returned when the tag is neither M.K. nor M!K!
	ErrFormat = errors.New("file is not a ProTracker module")
	// ErrSampleRange is returned for sample numbers outside 1..31
	ErrSampleRange = errors.New("sample number out of range")
	// ErrPatternMissing is returned when a song position references a pattern that is not stored
	ErrPatternMissing = errors.New("song position references a missing pattern")
)

// FormatError carries the unrecognised tag. It wraps ErrFormat.
type FormatError struct {
	Tag string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unrecognised tag %q", ErrFormat, e.Tag)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// SampleRangeError is returned by GetSample. It wraps ErrSampleRange.
type SampleRangeError struct {
	Number int
}

func (e *SampleRangeError) Error() string {
	if e.Number < 1 {
		return fmt.Sprintf("%s: sample numbers are 1 based, got %d", ErrSampleRange, e.Number)
	}
	return fmt.Sprintf("%s: max sample number is %d, got %d", ErrSampleRange, NumSamples, e.Number)
}

func (e *SampleRangeError) Unwrap() error { return ErrSampleRange }

// PatternMissingError wraps ErrPatternMissing.
type PatternMissingError struct {
	Position int
	Pattern  int
	Stored   int
}

func (e *PatternMissingError) Error() string {
	return fmt.Sprintf("%s: position %d uses pattern %d, %d stored", ErrPatternMissing, e.Position, e.Pattern, e.Stored)
}

func (e *PatternMissingError) Unwrap() error { return ErrPatternMissing }

// UnexpectedEOFError reports a read past the end of the input. It wraps
// io.ErrUnexpectedEOF.
type UnexpectedEOFError struct {
	Field  string
	Offset int
	Want   int
	Have   int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("reading %s at offset %d: want %d bytes, %d left: %v", e.Field, e.Offset, e.Want, e.Have, io.ErrUnexpectedEOF)
}

func (e *UnexpectedEOFError) Unwrap() error { return io.ErrUnexpectedEOF }
