package main

import (
	"github.com/gdamore/tcell/v2"
)

var backgroundColour = tcell.GetColor("#282a36")
var effectColour = tcell.GetColor("#88DEEB")
var songColour = tcell.GetColor("#F879C0")
var patternNoteFgColour = tcell.GetColor("#F879C0")
var patternSampleFgColour = tcell.GetColor("#ffb86c")

var sampleFgColour = tcell.GetColor("#626A86")
var sampleHighlightBgColour = tcell.GetColor("#526A9E")
var sampleHighlightFgColour = tcell.GetColor("#bc91f3")
var unusedFgColour = tcell.GetColor("#44475a")

var boxBgColour = tcell.GetColor("#282a36")
var boxFgColour = tcell.GetColor("#526A9E")

var defaultStyle = tcell.StyleDefault.Background(backgroundColour).Foreground(sampleFgColour)
var highlightStyle = tcell.StyleDefault.Background(sampleHighlightBgColour).Foreground(sampleHighlightFgColour).Bold(true)
var songStyle = tcell.StyleDefault.Background(backgroundColour).Bold(true).Foreground(songColour)
var labelStyle = defaultStyle.Bold(true)
var errorStyle = tcell.StyleDefault.Background(backgroundColour).Foreground(tcell.GetColor("#ff5555")).Bold(true)

// drawBox draws a rounded frame from (x1, y1) to (x2, y2) with an optional
// title set into the top border
func drawBox(s tcell.Screen, x1, y1, x2, y2 int, title string) {
	style := tcell.StyleDefault.Background(boxBgColour).Foreground(boxFgColour)

	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, '─', nil, style)
		s.SetContent(col, y2, '─', nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	// Only draw corners if necessary
	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, '╭', nil, style)
		s.SetContent(x2, y1, '╮', nil, style)
		s.SetContent(x1, y2, '╰', nil, style)
		s.SetContent(x2, y2, '╯', nil, style)
	}

	if title != "" && x2-x1 > 4 {
		drawText(s, x1+2, y1, x2-x1-3, style.Bold(true), " "+title+" ")
	}
}

// drawText writes text on one line starting at (x, y), clipped to width
// cells and padded with spaces up to width
func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
}
