package markdown

import (
	"strings"

	"github.com/stickpad/stickpad"
)

// fence starts a fenced code block line. Only the prefix matters; any
// language tag after the backticks is ignored.
const fence = "```"

// headerMarkers map a line prefix to the number of marker characters
// to strip. Longer markers are tested first so "## x" is not taken for
// a level-1 header.
var headerMarkers = []string{"### ", "## ", "# "}

// Render converts a note body into the ordered styled runs consumed by
// the preview surface. The body excludes the note's title and spacer
// lines; the caller strips those before invoking Render. The run
// sequence is rebuilt from scratch on every call.
func (r *Renderer) Render(body string) []stickpad.StyledRun {
	if body == "" {
		return nil
	}

	lines := strings.Split(body, "\n")
	var runs []stickpad.StyledRun
	inCode := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Fence lines toggle code mode and are not emitted.
		if strings.HasPrefix(line, fence) {
			inCode = !inCode
			continue
		}
		if inCode {
			runs = appendRun(runs, line+"\n", stickpad.StyleMonospace)
			continue
		}

		if isTableLine(line) {
			end := i
			for end < len(lines) && isTableLine(lines[end]) {
				end++
			}
			if spec, ok := parseTable(lines[i:end]); ok {
				if text := spec.format(r.estimate); text != "" {
					runs = appendRun(runs, text, stickpad.StyleMonospace)
				}
				i = end - 1
				continue
			}
			// A lone pipe line is not a table; fall through to prose.
		}

		if text, ok := headerText(line); ok {
			runs = appendRun(runs, text+"\n", stickpad.StyleHeader)
			continue
		}

		if hasEmphasis(line) {
			for _, run := range parseInline(line) {
				runs = appendRun(runs, run.Text, run.Style)
			}
			continue
		}

		runs = appendRun(runs, line+"\n", stickpad.StylePlain)
	}

	return runs
}

// headerText strips a #/##/### marker and returns the header text.
func headerText(line string) (string, bool) {
	for _, m := range headerMarkers {
		if strings.HasPrefix(line, m) {
			return line[len(m):], true
		}
	}
	return "", false
}

// appendRun appends text with the given style, merging into the
// previous run when the style matches. The merged sequence is
// observably equivalent to per-fragment emission.
func appendRun(runs []stickpad.StyledRun, text string, style stickpad.Style) []stickpad.StyledRun {
	if text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Style == style {
		runs[n-1].Text += text
		return runs
	}
	return append(runs, stickpad.StyledRun{Text: text, Style: style})
}
