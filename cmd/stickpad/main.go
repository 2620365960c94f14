// Command stickpad is a terminal sticky-notes tool with a live
// markdown preview.
//
// Usage:
//
//	stickpad [flags]
//
// Flags:
//
//	-dir string     Data directory (default ~/.stickpad)
//	-note string    Note ID to open (default: restore last session)
//	-export string  Note ID to export as HTML and exit
//	-o string       Export output file (default: stdout)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/stickpad/stickpad"
	bt "github.com/stickpad/stickpad/bubbletea"
	"github.com/stickpad/stickpad/config"
	"github.com/stickpad/stickpad/export"
	"github.com/stickpad/stickpad/note"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stickpad: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir      = flag.String("dir", defaultDataDir(), "Data directory")
		noteID   = flag.String("note", "", "Note ID to open (default: restore last session)")
		exportID = flag.String("export", "", "Note ID to export as HTML and exit")
		outPath  = flag.String("o", "", "Export output file (default: stdout)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := note.NewStore(*dir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Join(*dir, config.FileName))
	if err != nil {
		return err
	}

	if *exportID != "" {
		return exportNote(store, *exportID, *outPath)
	}

	n, err := startupNote(store, *noteID)
	if err != nil {
		return err
	}
	text, err := store.Load(n.ID)
	if err != nil {
		return err
	}

	model, err := bt.Run(ctx, bt.New(store, cfg, n, text))
	if err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	// Remember what was open for the next launch.
	opened := model.Note()
	if err := store.SaveSession(note.Session{Open: []string{opened.ID}, Active: opened.ID}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// startupNote picks the note to open: the explicit -note flag, then
// the previous session's active note, then the most recently edited
// note, and finally a brand new note in an empty store.
func startupNote(store *note.Store, noteID string) (stickpad.Note, error) {
	if noteID != "" {
		return store.Get(noteID)
	}

	if sess := store.LoadSession(); sess.Active != "" {
		if n, err := store.Get(sess.Active); err == nil {
			return n, nil
		}
		// The session points at a deleted note; fall through.
	}

	notes, err := store.List()
	if err != nil {
		return stickpad.Note{}, err
	}
	if len(notes) > 0 {
		return notes[0], nil
	}
	return store.Create()
}

// exportNote writes a note as standalone HTML to the output file, or
// stdout when none is given.
func exportNote(store *note.Store, id, outPath string) error {
	n, err := store.Get(id)
	if err != nil {
		return err
	}
	text, err := store.Load(id)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return export.HTML(out, n, text)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".stickpad")
}
