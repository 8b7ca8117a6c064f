// Package modfile loads and saves modules on a filesystem.
package modfile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

var modRegexp = regexp.MustCompile(`(?i)\.mod$`)

// Store reads and writes module files through an afero filesystem
type Store struct {
	Fs afero.Fs
}

// Entry is one item of a directory listing
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// NewOsStore returns a store on the real filesystem
func NewOsStore() *Store {
	return &Store{Fs: afero.NewOsFs()}
}

// NewMemStore returns a store backed by memory
func NewMemStore() *Store {
	return &Store{Fs: afero.NewMemMapFs()}
}

// Load reads the file at path and decodes it
func (s *Store) Load(path string) (*mod.Module, error) {
	data, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return nil, err
	}
	m, err := mod.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// Save encodes m and writes it to path, creating the parent directory
func (s *Store) Save(m *mod.Module, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.Fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.Fs, path, mod.Encode(m), 0o644)
}

// IsModuleFile reports whether name looks like a module file
func IsModuleFile(name string) bool {
	return modRegexp.MatchString(name) && name != "go.mod"
}

// List returns the subdirectories and module files of dir, directories
// first, each group sorted by name
func (s *Store) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(s.Fs, dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []Entry
	for _, info := range infos {
		if info.IsDir() {
			dirs = append(dirs, Entry{Name: info.Name(), IsDir: true, Size: info.Size()})
			continue
		}
		if IsModuleFile(info.Name()) {
			files = append(files, Entry{Name: info.Name(), Size: info.Size()})
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(dirs, files...), nil
}
