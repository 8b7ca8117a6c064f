package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
	"github.com/zeozeozeo/modtidy/pkg/mod"
	"github.com/zeozeozeo/modtidy/pkg/modfile"
)

// testModule plays patterns 1 and 0 and never plays pattern 2
func testModule() *mod.Module {
	m := mod.NewModule()
	m.Name = "browser test"
	m.SongLength = 2
	m.SongPositions[0] = 1
	m.SongPositions[1] = 0
	m.Patterns = []*mod.Pattern{mod.NewPattern(), mod.NewPattern(), mod.NewPattern()}
	m.Patterns[1].Channels[0].Items[0] = mod.PatternItem{SampleNumber: 1, Period: 214, Command: mod.SetVolume, CommandValue: 0x40}
	m.Patterns[2].Channels[0].Items[0] = mod.PatternItem{SampleNumber: 2, Period: 428}
	m.Samples[0] = mod.Sample{Name: "kick", Length: 8, Volume: 64, RepeatLength: 2, Data: make([]int8, 8)}
	m.Samples[1] = mod.Sample{Name: "snare", Length: 8, Volume: 64, RepeatLength: 2, Data: make([]int8, 8)}
	return m
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(132, 40)
	t.Cleanup(s.Fini)
	return s
}

// screenLine returns the runes shown on row y
func screenLine(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func screenContains(s tcell.SimulationScreen, text string) bool {
	_, _, height := s.GetContents()
	for y := 0; y < height; y++ {
		if strings.Contains(screenLine(s, y), text) {
			return true
		}
	}
	return false
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func newTestBrowser(t *testing.T) (*browser, tcell.SimulationScreen) {
	t.Helper()
	store := modfile.NewMemStore()
	if err := store.Save(testModule(), "/songs/a.mod"); err != nil {
		t.Fatal(err)
	}
	if err := store.Fs.MkdirAll("/songs/sub", 0o755); err != nil {
		t.Fatal(err)
	}

	s := newTestScreen(t)
	b, err := newBrowser(s, store, "/songs", nil)
	if err != nil {
		t.Fatalf("newBrowser() error = %v", err)
	}
	return b, s
}

func TestBrowserListsModules(t *testing.T) {
	b, s := newTestBrowser(t)

	names := make([]string, 0, len(b.entries))
	for _, f := range b.entries {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "..,sub,a.mod" {
		t.Fatalf("entries = %s, want ..,sub,a.mod", got)
	}

	b.draw()
	s.Show()
	line := screenLine(s, 3)
	if !strings.Contains(line, "a.mod") || !strings.Contains(line, "browser test") {
		t.Errorf("file row = %q, want the file name and module title", line)
	}
	if !strings.Contains(screenLine(s, 2), "<dir>") {
		t.Errorf("directory row = %q", screenLine(s, 2))
	}
}

func TestBrowserOpensModule(t *testing.T) {
	b, s := newTestBrowser(t)

	b.handleEvent(key(tcell.KeyEnd))
	if quit := b.handleEvent(key(tcell.KeyEnter)); quit {
		t.Fatal("Enter quit the browser")
	}
	if b.mode != moduleMode || b.modulePath != "/songs/a.mod" {
		t.Fatalf("mode = %v path = %q, want the module view of /songs/a.mod", b.mode, b.modulePath)
	}

	b.draw()
	s.Show()
	for _, want := range []string{"M.K.", "browser test", "kick", "C-3 01 C40"} {
		if !screenContains(s, want) {
			t.Errorf("module view does not show %q", want)
		}
	}

	b.handleEvent(key(tcell.KeyEscape))
	if b.mode != fileMode || b.module != nil {
		t.Errorf("Esc did not return to the file list")
	}
}

func TestBrowserChangeDir(t *testing.T) {
	b, _ := newTestBrowser(t)

	b.handleEvent(key(tcell.KeyDown))
	b.handleEvent(key(tcell.KeyEnter))
	if b.currentDir != "/songs/sub" {
		t.Fatalf("currentDir = %q, want /songs/sub", b.currentDir)
	}
	if len(b.entries) != 1 || b.entries[0].Name != ".." {
		t.Errorf("entries = %+v, want only ..", b.entries)
	}

	b.handleEvent(key(tcell.KeyEnter))
	if b.currentDir != "/songs" {
		t.Errorf("currentDir = %q after .., want /songs", b.currentDir)
	}
}

func TestBrowserQuit(t *testing.T) {
	b, _ := newTestBrowser(t)
	if !b.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
	if !b.handleEvent(key(tcell.KeyCtrlC)) {
		t.Error("Ctrl-C did not quit")
	}
}

func TestBrowserInvalidModule(t *testing.T) {
	b, _ := newTestBrowser(t)
	if err := afero.WriteFile(b.store.Fs, "/songs/a.mod", []byte("not a module"), 0o644); err != nil {
		t.Fatal(err)
	}
	b.entries[2].moduleName = nil

	if name := b.moduleName(2); name != "" {
		t.Errorf("moduleName() = %q for an invalid file", name)
	}
	b.currentIdx = 2
	b.handleEvent(key(tcell.KeyEnter))
	if b.mode != fileMode || b.status == "" {
		t.Errorf("opening an invalid file should stay in the list and set a status, mode %v status %q", b.mode, b.status)
	}
}

func TestModuleViewKeys(t *testing.T) {
	m := testModule()
	var v moduleView

	v.handleKey(m, key(tcell.KeyUp))
	if v.line != mod.NumRows-1 {
		t.Errorf("Up from row 0 = %d, want %d", v.line, mod.NumRows-1)
	}
	v.handleKey(m, key(tcell.KeyDown))
	if v.line != 0 {
		t.Errorf("Down from the last row = %d, want 0", v.line)
	}
	v.handleKey(m, key(tcell.KeyPgDn))
	if v.line != 16 {
		t.Errorf("PgDn = %d, want 16", v.line)
	}

	v.handleKey(m, key(tcell.KeyRight))
	v.handleKey(m, key(tcell.KeyRight))
	if v.position != 1 || v.line != 0 {
		t.Errorf("position %d line %d, want 1 and 0", v.position, v.line)
	}
	v.handleKey(m, key(tcell.KeyLeft))
	if v.position != 0 {
		t.Errorf("Left = %d, want 0", v.position)
	}
}

func TestDrawModuleMissingPattern(t *testing.T) {
	s := newTestScreen(t)
	m := testModule()
	m.SongPositions[0] = 7

	drawModule(s, m, "broken.mod", &moduleView{})
	s.Show()
	if !screenContains(s, "pattern 7 is not stored") {
		t.Error("missing pattern not reported")
	}
}

func TestModuleViewLongSong(t *testing.T) {
	s := newTestScreen(t)
	m := testModule()
	m.SongLength = 200

	var v moduleView
	for i := 0; i < 250; i++ {
		v.handleKey(m, key(tcell.KeyRight))
	}
	if v.position != mod.NumPositions-1 {
		t.Errorf("position = %d, want %d", v.position, mod.NumPositions-1)
	}
	drawModule(s, m, "long.mod", &v)
	s.Show()
}
