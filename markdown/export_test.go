package markdown

// Hooks for white-box tests.
var (
	ParseInline   = parseInline
	IsTableLine   = isTableLine
	StripEmphasis = stripEmphasis
)

// FormatTable parses and formats a run of table lines with the default
// classifier, bypassing the block renderer.
func FormatTable(lines []string) (string, bool) {
	spec, ok := parseTable(lines)
	if !ok {
		return "", false
	}
	return spec.format(func(s string) int { return estimateWidth(s, Classify) }), true
}
