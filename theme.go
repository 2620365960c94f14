package stickpad

// Theme defines semantic color mappings using ANSI color indices
// (0-15). The user's terminal theme determines the actual RGB values.
type Theme struct {
	Header int // Header runs and the note title
	Accent int // Selected list items, active tab
	Muted  int // Status bar, placeholders
	Error  int // Error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Header: 5,
		Accent: 4,
		Muted:  8,
		Error:  1,
	}
}

// DefaultColors is the note background palette. The first entry is the
// color assigned to new notes.
func DefaultColors() []string {
	return []string{
		"#FFF9C4", // yellow
		"#C8E6C9", // green
		"#BBDEFB", // blue
		"#FFCCBC", // orange
		"#E1BEE7", // purple
	}
}
