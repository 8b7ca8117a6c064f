package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

const visibleRows = 32

// moduleView is the cursor of the module screen: a song position and a
// row of the pattern it plays
type moduleView struct {
	position int
	line     int
}

func (v *moduleView) handleKey(m *mod.Module, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyDown:
		v.line = (v.line + 1) % mod.NumRows
	case tcell.KeyUp:
		v.line = (v.line + mod.NumRows - 1) % mod.NumRows
	case tcell.KeyPgDn:
		v.line = min(v.line+16, mod.NumRows-1)
	case tcell.KeyPgUp:
		v.line = max(v.line-16, 0)
	case tcell.KeyRight:
		if v.position < len(m.Positions())-1 {
			v.position++
			v.line = 0
		}
	case tcell.KeyLeft:
		if v.position > 0 {
			v.position--
			v.line = 0
		}
	case tcell.KeyHome:
		v.position, v.line = 0, 0
	}
}

// currentPattern returns the pattern played at the view's position, nil
// when the position references a pattern that is not stored
func (v *moduleView) currentPattern(m *mod.Module) (int, *mod.Pattern) {
	idx := int(m.SongPositions[min(v.position, mod.NumPositions-1)])
	if idx >= len(m.Patterns) {
		return idx, nil
	}
	return idx, m.Patterns[idx]
}

func drawModule(s tcell.Screen, m *mod.Module, path string, v *moduleView) {
	drawHeader(s, m, path, v)
	drawSamples(s, m)
	drawPatterns(s, m, v)

	_, height := s.Size()
	drawText(s, 2, height-2, 100, defaultStyle, "↑/↓ row  PgUp/PgDn jump  ←/→ position  Esc back  q quit")
}

func drawHeader(s tcell.Screen, m *mod.Module, path string, v *moduleView) {
	xPos, yPos := 2, 0

	drawText(s, xPos, yPos, 6, labelStyle, "File:")
	xPos += 6
	drawText(s, xPos, yPos, 40, defaultStyle.Foreground(effectColour), path)
	xPos += 40

	drawText(s, xPos, yPos, 8, labelStyle, "Format:")
	xPos += 8
	drawText(s, xPos, yPos, 6, defaultStyle.Foreground(patternSampleFgColour), m.Tag())
	xPos += 6

	drawText(s, xPos, yPos, 10, labelStyle, "Position:")
	xPos += 10
	drawText(s, xPos, yPos, 8, defaultStyle.Foreground(patternSampleFgColour), fmt.Sprintf("%d/%d", v.position, m.SongLength))
	xPos += 8

	idx, _ := v.currentPattern(m)
	drawText(s, xPos, yPos, 9, labelStyle, "Pattern:")
	xPos += 9
	drawText(s, xPos, yPos, 8, defaultStyle.Foreground(patternSampleFgColour), fmt.Sprintf("%d/%d", idx, len(m.Patterns)))
}

func drawSamples(s tcell.Screen, m *mod.Module) {
	xPos, yPos := 1, 1
	width, height := 27, 33

	drawBox(s, xPos, yPos, xPos+width, yPos+height, "")
	xPos++
	yPos++

	drawText(s, xPos, yPos, width-2, songStyle, m.Title())
	yPos++

	used := make(map[int]bool, mod.NumSamples)
	for _, n := range m.UsedSamples() {
		used[n] = true
	}

	for idx := range m.Samples {
		sample := &m.Samples[idx]
		style := defaultStyle
		switch {
		case used[idx+1]:
			style = defaultStyle.Foreground(sampleHighlightFgColour)
		case sample.IsEmpty():
			style = defaultStyle.Foreground(unusedFgColour)
		}
		loop := ' '
		if sample.IsLooped() {
			loop = '∞'
		}
		drawText(s, xPos, yPos, width-2, style, fmt.Sprintf("%02d %-20s%c", idx+1, sample.Title(), loop))
		yPos++
	}
}

func drawPatterns(s tcell.Screen, m *mod.Module, v *moduleView) {
	x, y := 33, 1
	width, height := 94, 33
	drawBox(s, x, y, x+width, y+height, "")
	xPos := x + 1
	yPos := y + 1

	if m.SongLength == 0 {
		drawText(s, xPos, yPos, width-2, defaultStyle, "empty song")
		return
	}
	patternIdx, pattern := v.currentPattern(m)
	if pattern == nil {
		drawText(s, xPos, yPos, width-2, errorStyle, fmt.Sprintf("pattern %d is not stored", patternIdx))
		return
	}

	rowHighlight := tcell.StyleDefault.Background(sampleHighlightBgColour).Foreground(sampleHighlightFgColour).Bold(true)

	var lineIdx int
	switch {
	case v.line < 16:
		lineIdx = 0
	case v.line > 48:
		lineIdx = 32
	default:
		lineIdx = v.line - 16
	}

	for rowNum := 0; rowNum < visibleRows && lineIdx < mod.NumRows; rowNum++ {
		style := defaultStyle
		if lineIdx == v.line {
			style = rowHighlight
		}

		drawText(s, xPos, yPos, 5, style, fmt.Sprintf("%02d.%02d", v.position, lineIdx))
		xPos += 5

		for _, item := range pattern.Row(lineIdx) {
			drawText(s, xPos, yPos, 1, style, "│")
			xPos++
			xPos += drawItem(s, xPos, yPos, style, item)
		}
		lineIdx++
		xPos = x + 1
		yPos++
	}
}

// drawItem renders one cell as note, sample and effect columns and returns
// the width it used
func drawItem(s tcell.Screen, x, y int, style tcell.Style, item mod.PatternItem) int {
	xPos := x

	if name := mod.NoteName(item.Period); name != "" {
		drawText(s, xPos, y, 4, style.Foreground(patternNoteFgColour), name+" ")
	} else if item.Period != 0 {
		drawText(s, xPos, y, 4, style.Foreground(patternNoteFgColour), fmt.Sprintf("%03x ", item.Period))
	} else {
		drawText(s, xPos, y, 4, style, "... ")
	}
	xPos += 4

	if item.SampleNumber > 0 {
		drawText(s, xPos, y, 3, style.Foreground(patternSampleFgColour), fmt.Sprintf("%02d ", item.SampleNumber))
	} else {
		drawText(s, xPos, y, 3, style, ".. ")
	}
	xPos += 3

	if item.Command != mod.Arpeggio || item.CommandValue != 0 {
		drawText(s, xPos, y, 3, style.Foreground(effectColour), fmt.Sprintf("%X%02X", uint8(item.Command), item.CommandValue))
	} else {
		drawText(s, xPos, y, 3, style, "...")
	}
	xPos += 3

	return xPos - x
}
