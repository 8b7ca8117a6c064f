package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/zeozeozeo/modtidy/pkg/mod"
	"github.com/zeozeozeo/modtidy/pkg/modfile"
)

type browserMode int

const (
	fileMode browserMode = iota
	moduleMode
)

type file struct {
	modfile.Entry
	moduleName *string
}

// browser is a read-only terminal browser: a directory listing of module
// files and, once one is opened, a view of its samples and patterns
type browser struct {
	screen tcell.Screen
	store  *modfile.Store
	logger *log.Logger

	mode       browserMode
	currentDir string
	currentIdx int
	entries    []file
	status     string

	module     *mod.Module
	modulePath string
	view       moduleView
}

func newBrowser(s tcell.Screen, store *modfile.Store, dir string, logger *log.Logger) (*browser, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &browser{
		screen:     s,
		store:      store,
		logger:     logger,
		currentDir: filepath.Clean(dir),
	}
	if err := b.readDir(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *browser) readDir() error {
	entries, err := b.store.List(b.currentDir)
	if err != nil {
		return err
	}

	var files []file
	if b.currentDir != "/" {
		files = append(files, file{Entry: modfile.Entry{Name: "..", IsDir: true}})
	}
	for _, e := range entries {
		files = append(files, file{Entry: e})
	}
	b.entries = files
	b.currentIdx = 0
	return nil
}

func (b *browser) changeDir(name string) error {
	previous := b.currentDir
	b.currentDir = filepath.Clean(filepath.Join(b.currentDir, name))
	if err := b.readDir(); err != nil {
		b.currentDir = previous
		return err
	}
	return nil
}

// moduleName decodes the file once and caches its title, empty when the
// file is not a valid module
func (b *browser) moduleName(idx int) string {
	f := &b.entries[idx]
	if f.moduleName == nil {
		name := ""
		m, err := b.store.Load(filepath.Join(b.currentDir, f.Name))
		if err == nil {
			name = m.Title()
		} else {
			b.logger.Debug("cannot read module", "file", f.Name, "err", err)
		}
		f.moduleName = &name
	}
	return *f.moduleName
}

func (b *browser) open(f file) {
	path := filepath.Join(b.currentDir, f.Name)
	m, err := b.store.Load(path)
	if err != nil {
		b.status = err.Error()
		return
	}
	b.module = m
	b.modulePath = path
	b.view = moduleView{}
	b.mode = moduleMode
	b.status = ""
	b.screen.Clear()
}

func (b *browser) closeModule() {
	b.module = nil
	b.modulePath = ""
	b.mode = fileMode
	b.screen.Clear()
}

func (b *browser) draw() {
	b.screen.Fill(' ', defaultStyle)
	switch b.mode {
	case moduleMode:
		drawModule(b.screen, b.module, b.modulePath, &b.view)
	default:
		b.drawFiles()
	}
	if b.status != "" {
		_, height := b.screen.Size()
		drawText(b.screen, 1, height-1, 128, errorStyle, b.status)
	}
}

func (b *browser) drawFiles() {
	width, height := b.screen.Size()
	if width > 131 {
		width = 131
	}
	drawBox(b.screen, 0, 0, width-1, height-2, b.currentDir)

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	first := 0
	if b.currentIdx >= visible {
		first = b.currentIdx - visible + 1
	}

	yPos := 1
	for idx := first; idx < len(b.entries) && idx < first+visible; idx++ {
		f := b.entries[idx]
		style := defaultStyle
		if idx == b.currentIdx {
			style = highlightStyle
		}

		xPos := 1
		drawText(b.screen, xPos, yPos, 32, style, fmt.Sprintf("%-31s", f.Name))
		xPos += 32
		if f.IsDir {
			drawText(b.screen, xPos, yPos, 9, style, "<dir>")
		} else {
			drawText(b.screen, xPos, yPos, 9, style, fmt.Sprintf("%-8d", f.Size))
			xPos += 9
			drawText(b.screen, xPos, yPos, 20, style, b.moduleName(idx))
		}
		yPos++
	}
}

// handleEvent applies one terminal event and reports whether to quit
func (b *browser) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return true
		}
		if b.mode == moduleMode {
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2 {
				b.closeModule()
				return false
			}
			b.view.handleKey(b.module, ev)
			return false
		}
		return b.handleFileKey(ev)
	}
	return false
}

func (b *browser) handleFileKey(ev *tcell.EventKey) bool {
	if len(b.entries) == 0 {
		return ev.Key() == tcell.KeyEscape
	}
	switch ev.Key() {
	case tcell.KeyDown:
		if b.currentIdx < len(b.entries)-1 {
			b.currentIdx++
		} else {
			b.currentIdx = 0
		}
	case tcell.KeyUp:
		if b.currentIdx > 0 {
			b.currentIdx--
		} else {
			b.currentIdx = len(b.entries) - 1
		}
	case tcell.KeyHome:
		b.currentIdx = 0
	case tcell.KeyEnd:
		b.currentIdx = len(b.entries) - 1
	case tcell.KeyEscape:
		return true
	case tcell.KeyEnter:
		f := b.entries[b.currentIdx]
		if f.IsDir {
			if err := b.changeDir(f.Name); err != nil {
				b.status = err.Error()
			} else {
				b.status = ""
			}
			b.screen.Clear()
		} else {
			b.open(f)
		}
	}
	return false
}

// run draws and handles events until the user quits
func (b *browser) run() {
	for {
		b.draw()
		b.screen.Show()
		ev := b.screen.PollEvent()
		if ev == nil || b.handleEvent(ev) {
			return
		}
	}
}
