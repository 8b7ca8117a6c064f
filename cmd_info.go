package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show the header, samples and pattern usage of modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for idx, path := range args {
				m, err := a.store.Load(path)
				if err != nil {
					return err
				}
				if idx > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				renderInfo(cmd.OutOrStdout(), path, m)
			}
			return nil
		},
	}
}

func renderInfo(w io.Writer, path string, m *mod.Module) {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Title()) + " " + PathStyle.Render(path) + "\n")
	b.WriteString(field("Format", m.Tag()) + "\n")
	b.WriteString(field("Song length", m.SongLength) + "\n")
	b.WriteString(field("Patterns", len(m.Patterns)) + "\n")

	positions := make([]string, 0, len(m.Positions()))
	for _, p := range m.Positions() {
		positions = append(positions, fmt.Sprint(p))
	}
	b.WriteString(field("Positions", strings.Join(positions, " ")) + "\n")

	var unusedPatterns []string
	for idx := range m.Patterns {
		if !m.IsPatternUsed(idx) {
			unusedPatterns = append(unusedPatterns, fmt.Sprint(idx))
		}
	}
	if len(unusedPatterns) > 0 {
		b.WriteString(field("Unused", strings.Join(unusedPatterns, " ")) + "\n")
	}
	if err := m.Validate(); err != nil {
		b.WriteString(ErrorStyle.Render(err.Error()) + "\n")
	}
	if !m.HasStandardNotesOnly() {
		b.WriteString(SubtitleStyle.Render("uses periods outside the standard note table") + "\n")
	}

	b.WriteString("\n" + TitleStyle.Render("Samples") + "\n")
	b.WriteString(renderSamples(m))

	fmt.Fprint(w, b.String())
}

func renderSamples(m *mod.Module) string {
	used := make(map[int]bool, mod.NumSamples)
	for _, n := range m.UsedSamples() {
		used[n] = true
	}

	header := fmt.Sprintf("%-3s %-22s %6s %4s %3s %6s %6s", "#", "name", "length", "fine", "vol", "rep", "replen")
	lines := []string{SubtitleStyle.Render(header)}
	for idx := range m.Samples {
		s := &m.Samples[idx]
		if s.IsEmpty() && s.Title() == "" {
			continue
		}
		line := fmt.Sprintf("%02d  %-22s %6d %4d %3d %6d %6d", idx+1, s.Title(), s.Length, s.FineTune, s.Volume, s.RepeatStart, s.RepeatLength)
		switch {
		case used[idx+1]:
			line = ValueStyle.Render(line)
		default:
			line = UnusedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
