// Package note stores notes on disk, one folder per note. A note
// folder noteN contains text.md with the note text and color.txt with
// its background color.
package note

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stickpad/stickpad"
)

const (
	textFile  = "text.md"
	colorFile = "color.txt"

	// seedText is the content of a freshly created note: a title line
	// and the spacer line the preview boundary expects.
	seedText = "New Note\n\n"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Store manages the on-disk note collection rooted at a data
// directory.
type Store struct {
	dir string
}

// NewStore opens a store at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

// List returns all notes sorted by modification time, newest first.
// Folders without a readable text.md are skipped rather than failing
// the whole listing.
func (s *Store) List() ([]stickpad.Note, error) {
	var notes []stickpad.Note
	err := doublestar.GlobWalk(os.DirFS(s.dir), "note*/"+textFile, func(p string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		n, err := s.note(path.Dir(p))
		if err != nil {
			return nil
		}
		notes = append(notes, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ModTime.After(notes[j].ModTime)
	})
	return notes, nil
}

// Create allocates the next free note ID and seeds it with default
// content and the default color.
func (s *Store) Create() (stickpad.Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return stickpad.Note{}, fmt.Errorf("read data dir: %w", err)
	}
	next := 1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if n, ok := noteNumber(e.Name()); ok && n >= next {
			next = n + 1
		}
	}
	id := "note" + strconv.Itoa(next)

	if err := os.MkdirAll(filepath.Join(s.dir, id), 0o700); err != nil {
		return stickpad.Note{}, fmt.Errorf("create note dir: %w", err)
	}
	if err := s.SaveText(id, seedText); err != nil {
		return stickpad.Note{}, err
	}
	if err := s.SetColor(id, stickpad.DefaultColors()[0]); err != nil {
		return stickpad.Note{}, err
	}
	return s.note(id)
}

// Get returns the metadata for one note.
func (s *Store) Get(id string) (stickpad.Note, error) {
	return s.note(id)
}

// Load returns the full text of a note.
func (s *Store) Load(id string) (string, error) {
	data, err := os.ReadFile(s.textPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", id, stickpad.ErrNoteNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}

// SaveText writes the note text atomically.
func (s *Store) SaveText(id, text string) error {
	if err := os.MkdirAll(filepath.Join(s.dir, id), 0o700); err != nil {
		return fmt.Errorf("create note dir: %w", err)
	}
	return atomicWrite(s.textPath(id), []byte(text))
}

// Delete removes a note and its folder.
func (s *Store) Delete(id string) error {
	if _, err := os.Stat(s.textPath(id)); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", id, stickpad.ErrNoteNotFound)
	}
	if err := os.RemoveAll(filepath.Join(s.dir, id)); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// Color returns the note's background color, falling back to the
// default when color.txt is missing or unreadable.
func (s *Store) Color(id string) string {
	data, err := os.ReadFile(s.colorPath(id))
	if err != nil {
		return stickpad.DefaultColors()[0]
	}
	c := strings.TrimSpace(string(data))
	if !hexColor.MatchString(c) {
		return stickpad.DefaultColors()[0]
	}
	return c
}

// SetColor validates and persists the note's background color.
func (s *Store) SetColor(id, color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%q: %w", color, stickpad.ErrInvalidColor)
	}
	return atomicWrite(s.colorPath(id), []byte(color))
}

func (s *Store) note(id string) (stickpad.Note, error) {
	info, err := os.Stat(s.textPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return stickpad.Note{}, fmt.Errorf("%s: %w", id, stickpad.ErrNoteNotFound)
	}
	if err != nil {
		return stickpad.Note{}, fmt.Errorf("stat note: %w", err)
	}
	text, err := s.Load(id)
	if err != nil {
		return stickpad.Note{}, err
	}
	return stickpad.Note{
		ID:      id,
		Title:   stickpad.Title(text),
		Color:   s.Color(id),
		ModTime: info.ModTime(),
	}, nil
}

func (s *Store) textPath(id string) string {
	return filepath.Join(s.dir, id, textFile)
}

func (s *Store) colorPath(id string) string {
	return filepath.Join(s.dir, id, colorFile)
}

// noteNumber extracts N from a "noteN" folder name.
func noteNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "note")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// atomicWrite writes data via a temp file and rename so a crash never
// leaves a half-written note behind.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
