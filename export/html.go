// Package export renders notes to standalone HTML files. Unlike the
// preview renderer, export targets real markdown viewers, so it uses a
// full GFM parser rather than the preview's small dialect.
package export

import (
	"fmt"
	"html"
	"io"

	"github.com/stickpad/stickpad"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HTML writes a standalone HTML document for a note to w. The page
// background is tinted with the note's color and the title becomes the
// document title.
func HTML(w io.Writer, n stickpad.Note, text string) error {
	color := n.Color
	if color == "" {
		color = stickpad.DefaultColors()[0]
	}

	if _, err := fmt.Fprintf(w, header, html.EscapeString(n.Title), color); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := converter.Convert([]byte(text), w); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	if _, err := io.WriteString(w, footer); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

const header = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background-color: %s; font-family: sans-serif; max-width: 42em; margin: 2em auto; padding: 0 1em; }
pre, code { background-color: #E0E0E0; }
table { border-collapse: collapse; }
td, th { border: 1px solid #888; padding: 0.25em 0.5em; }
</style>
</head>
<body>
`

const footer = `</body>
</html>
`
