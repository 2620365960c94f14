package markdown

import (
	"regexp"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// WidthClass buckets a rune by how many columns it is expected to
// occupy in a monospaced table cell.
type WidthClass int

const (
	ClassNarrow   WidthClass = iota // one column
	ClassWide                       // two columns: emoji, pictographs, East-Asian wide
	ClassMath                       // one and a half columns
	ClassCurrency                   // one and a half columns
)

// Classifier assigns a WidthClass to a rune. The default implementation
// uses the stdlib Unicode category tables plus go-runewidth's
// East-Asian width data; swapping in a different Classifier changes the
// width source without touching the table-formatting algorithm.
type Classifier func(r rune) WidthClass

// Classify is the default Classifier.
func Classify(r rune) WidthClass {
	switch {
	case unicode.Is(unicode.So, r):
		return ClassWide
	case unicode.Is(unicode.Sm, r):
		return ClassMath
	case unicode.Is(unicode.Sc, r):
		return ClassCurrency
	case runewidth.RuneWidth(r) == 2:
		return ClassWide
	default:
		return ClassNarrow
	}
}

// halfCells is the width of a class in half-columns. Math and currency
// symbols occupy one and a half columns; accumulating half-cells as
// integers and dividing once at the end reproduces the truncate-the-sum
// contract without floating point.
func halfCells(c WidthClass) int {
	switch c {
	case ClassWide:
		return 4
	case ClassMath, ClassCurrency:
		return 3
	default:
		return 2
	}
}

// EstimateWidth estimates the rendered column width of a table cell
// using the default Classifier. The result is non-negative, zero for
// the empty string, and non-decreasing under concatenation. It is an
// estimate: exact alignment depends on the viewer's font.
func EstimateWidth(text string) int {
	return estimateWidth(text, Classify)
}

func estimateWidth(text string, classify Classifier) int {
	total := 0
	for _, r := range stripEmphasis(text) {
		total += halfCells(classify(r))
	}
	return total / 2
}

var (
	boldMarkers   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicMarkers = regexp.MustCompile(`\*(.*?)\*`)
)

// stripEmphasis removes *-delimited bold and italic markers so they do
// not count toward cell width. Underscore-delimited markers are
// measured as literal text; cells using them come out slightly wider
// than displayed. That asymmetry is the defined behavior.
func stripEmphasis(s string) string {
	s = boldMarkers.ReplaceAllString(s, "$1")
	s = italicMarkers.ReplaceAllString(s, "$1")
	return s
}
