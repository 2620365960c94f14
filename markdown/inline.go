package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/stickpad/stickpad"
)

// spanRule is one inline emphasis delimiter. Rules are tested in a
// fixed order at each cursor position, so the two-character delimiters
// take priority over their one-character prefixes.
type spanRule struct {
	open  string
	close string
	style stickpad.Style
}

// spanRules is the delimiter priority order: bold before italic.
var spanRules = []spanRule{
	{open: "**", close: "**", style: stickpad.StyleBold},
	{open: "__", close: "__", style: stickpad.StyleBold},
	{open: "*", close: "*", style: stickpad.StyleItalic},
	{open: "_", close: "_", style: stickpad.StyleItalic},
}

// hasEmphasis reports whether a line contains any emphasis delimiter
// character and is worth running through the inline parser.
func hasEmphasis(line string) bool {
	return strings.ContainsAny(line, "*_")
}

// parseInline scans a single prose line left to right and returns its
// styled runs, newline-terminated. A delimiter pair is recognized only
// when the closing delimiter occurs later in the same line; an
// unmatched opener is literal text and the cursor advances one rune.
// Matching is leftmost-greedy per rule with no backtracking across
// rule types.
func parseInline(line string) []stickpad.StyledRun {
	var runs []stickpad.StyledRun
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, stickpad.StyledRun{Text: plain.String(), Style: stickpad.StylePlain})
			plain.Reset()
		}
	}

	pos := 0
scan:
	for pos < len(line) {
		rest := line[pos:]
		for _, r := range spanRules {
			if !strings.HasPrefix(rest, r.open) {
				continue
			}
			// A single * or _ is not an opener when it starts a
			// doubled delimiter; the doubled rules own that case.
			if len(r.open) == 1 && strings.HasPrefix(rest, r.open+r.open) {
				continue
			}
			end := strings.Index(rest[len(r.open):], r.close)
			if end < 0 {
				continue
			}
			flush()
			if content := rest[len(r.open) : len(r.open)+end]; content != "" {
				runs = append(runs, stickpad.StyledRun{Text: content, Style: r.style})
			}
			pos += len(r.open) + end + len(r.close)
			continue scan
		}
		_, size := utf8.DecodeRuneInString(rest)
		plain.WriteString(rest[:size])
		pos += size
	}

	plain.WriteString("\n")
	flush()
	return runs
}
