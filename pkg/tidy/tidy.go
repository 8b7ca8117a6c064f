// Package tidy applies the module maintenance transforms in a fixed order
// and reports what they changed.
package tidy

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/zeozeozeo/modtidy/pkg/config"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

// Options selects the steps Run performs
type Options struct {
	RemoveUnusedPatterns bool
	RemoveUnusedSamples  bool
	OptimiseLooped       bool
	TruncateToLoop       bool
	ZeroLeading          bool
	// PadBlockSize pads samples to a multiple of this many bytes, 0 disables padding
	PadBlockSize int
	Logger       *log.Logger
}

// OptionsFromConfig maps the tidy section of a config onto Options
func OptionsFromConfig(cfg config.TidyConfig, logger *log.Logger) Options {
	return Options{
		RemoveUnusedPatterns: cfg.RemoveUnusedPatterns,
		RemoveUnusedSamples:  cfg.RemoveUnusedSamples,
		OptimiseLooped:       cfg.OptimiseLooped,
		TruncateToLoop:       cfg.TruncateToLoop,
		ZeroLeading:          cfg.ZeroLeading,
		PadBlockSize:         cfg.PadBlockSize,
		Logger:               logger,
	}
}

// Report summarises the effect of Run on one module
type Report struct {
	PatternsBefore    int
	PatternsAfter     int
	SamplesCleared    int
	SamplesTruncated  int
	SampleBytesBefore int
	SampleBytesAfter  int
}

// Saved returns how many sample data bytes were removed, negative when
// padding grew the module
func (r Report) Saved() int {
	return r.SampleBytesBefore - r.SampleBytesAfter
}

// Run applies the selected steps to m: unused patterns, unused samples,
// loop optimisation, loop truncation, leading zeroes, padding. On error m
// is left as the failing step found it.
func Run(m *mod.Module, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	report := Report{
		PatternsBefore:    len(m.Patterns),
		SampleBytesBefore: sampleBytes(m),
	}

	if opts.RemoveUnusedPatterns {
		if err := m.RemoveUnusedPatterns(); err != nil {
			return report, err
		}
		logger.Debug("removed unused patterns", "before", report.PatternsBefore, "after", len(m.Patterns))
	}

	if opts.RemoveUnusedSamples {
		for n := 1; n <= mod.NumSamples; n++ {
			s, err := m.GetSample(n)
			if err != nil {
				return report, err
			}
			if !s.IsEmpty() && !m.IsSampleUsed(n) {
				report.SamplesCleared++
				logger.Debug("clearing unused sample", "sample", n, "name", s.Title(), "length", s.Length)
			}
		}
		m.RemoveUnusedSamples()
	}

	if opts.OptimiseLooped {
		m.OptimiseLoopedAllSamples()
		logger.Debug("optimised looped samples", "bytes", sampleBytes(m))
	}

	if opts.TruncateToLoop {
		report.SamplesTruncated = m.TruncateAllToLoop()
		logger.Debug("truncated samples to their loop", "samples", report.SamplesTruncated)
	}

	if opts.ZeroLeading {
		m.ZeroLeadingAllSamples()
	}

	if opts.PadBlockSize > 0 {
		m.PadAllSamples(opts.PadBlockSize)
		logger.Debug("padded samples", "block", opts.PadBlockSize, "bytes", sampleBytes(m))
	}

	report.PatternsAfter = len(m.Patterns)
	report.SampleBytesAfter = sampleBytes(m)
	return report, nil
}

// sampleBytes counts the data bytes Encode would write
func sampleBytes(m *mod.Module) int {
	total := 0
	for idx := range m.Samples {
		if s := &m.Samples[idx]; s.Length > 2 {
			total += len(s.Data)
		}
	}
	return total
}
