// Package stickpad contains the domain types for the stickpad
// sticky-notes tool: notes, styled preview runs, and the theme.
package stickpad

// Style identifies the visual treatment of a preview run. The mapping
// from Style to concrete attributes (font weight, slant, scale,
// background) belongs to the display surface, not the renderer.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleHeader
	StyleMonospace
)

// String returns the style name for logs and test output.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleHeader:
		return "header"
	case StyleMonospace:
		return "monospace"
	default:
		return "unknown"
	}
}

// StyledRun is a fragment of rendered preview text with its style.
// A render pass produces an ordered sequence of runs which is applied
// to the display surface as-is; runs are never mutated after emission.
type StyledRun struct {
	Text  string
	Style Style
}
