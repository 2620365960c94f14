package bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"github.com/stickpad/stickpad"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Header      lipgloss.Style
	Bold        lipgloss.Style
	Italic      lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Accent      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t stickpad.Theme) Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Foreground(ansiColor(t.Header)).Bold(true),
		Bold:        lipgloss.NewStyle().Bold(true),
		Italic:      lipgloss.NewStyle().Italic(true),
		Muted:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:       lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Accent:      lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		TabActive:   lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// RenderRuns converts a styled-run sequence into terminal text. The
// terminal is already fixed-width, so Monospace and Plain runs pass
// through untouched; the remaining styles map to ANSI attributes.
func (s Styles) RenderRuns(runs []stickpad.StyledRun) string {
	var b strings.Builder
	for _, r := range runs {
		switch r.Style {
		case stickpad.StyleBold:
			b.WriteString(s.Bold.Render(r.Text))
		case stickpad.StyleItalic:
			b.WriteString(s.Italic.Render(r.Text))
		case stickpad.StyleHeader:
			// Header runs carry their newline; style the text only so
			// the attribute reset lands before the line break.
			b.WriteString(s.Header.Render(strings.TrimSuffix(r.Text, "\n")))
			if strings.HasSuffix(r.Text, "\n") {
				b.WriteString("\n")
			}
		default:
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

// truncate shortens s to at most max display columns, appending an
// ellipsis when cut. It walks grapheme clusters so emoji and combining
// sequences are never split.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= max {
		return s
	}
	var b strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if w+cw > max-1 {
			break
		}
		b.WriteString(g.Str())
		w += cw
	}
	return b.String() + "…"
}
