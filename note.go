package stickpad

import (
	"strings"
	"time"
)

// Note is the stored metadata for a single note. The note text itself
// lives on disk and is loaded separately; Title is derived from the
// first line of the text.
type Note struct {
	ID      string
	Title   string
	Color   string
	ModTime time.Time
}

// Title returns the note title: the first line of the text, or
// "Untitled" when the first line is empty.
func Title(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "Untitled"
	}
	return line
}

// Body returns the preview body of a note: everything after the title
// line and the spacer line that follows it. The preview renderer is
// handed body text only; it never sees the title.
func Body(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines[2:], "\n")
}
