package markdown_test

import (
	"strings"
	"testing"

	"github.com/stickpad/stickpad/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTableLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"| a | b |", true},
		{"  | a |  ", true},
		{"||", true},
		{"|", false},
		{"a | b", false},
		{"| a | b", false},
		{"plain text", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markdown.IsTableLine(tt.line))
		})
	}
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("minimal table hits the width floor", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{"| A | B |", "|---|---|", "| 1 | 2 |"})
		require.True(t, ok)
		want := strings.Join([]string{
			"┌─────┬─────┐",
			"│ A   │ B   │",
			"├─────┼─────┤",
			"│ 1   │ 2   │",
			"└─────┴─────┘",
			"",
			"",
		}, "\n")
		assert.Equal(t, want, out)
	})

	t.Run("fewer than two lines is rejected", func(t *testing.T) {
		t.Parallel()
		_, ok := markdown.FormatTable([]string{"|a|b|"})
		assert.False(t, ok)
	})

	t.Run("second line need not be a separator", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{"| h1 | h2 |", "| a | b |"})
		require.True(t, ok)
		// Both lines render: header row plus one data row.
		assert.Contains(t, out, "│ h1  │ h2  │")
		assert.Contains(t, out, "│ a   │ b   │")
	})

	t.Run("alignment from separator colons", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{
			"| left | mid | right |",
			"|------|:---:|------:|",
			"| a | b | c |",
		})
		require.True(t, ok)
		assert.Contains(t, out, "│ a    │  b  │     c │")
	})

	t.Run("center puts the odd space on the right", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{
			"| head |",
			"|:----:|",
			"| a |",
		})
		require.True(t, ok)
		assert.Contains(t, out, "│  a   │")
	})

	t.Run("ragged rows are padded to the widest row", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{
			"| a | b |",
			"|---|---|",
			"| 1 | 2 | 3 |",
		})
		require.True(t, ok)
		assert.Contains(t, out, "│ a   │ b   │     │")
		assert.Contains(t, out, "│ 1   │ 2   │ 3   │")
	})

	t.Run("uniform row width", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{
			"| name | qty | price |",
			"|------|----:|------:|",
			"| widget | 2 | 30 |",
			"| gadget | 10 | 12345 |",
		})
		require.True(t, ok)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.NotEmpty(t, lines)
		// Column widths 6, 3, 5: every row is sum(width+3)+1 runes.
		want := (6 + 3) + (3 + 3) + (5 + 3) + 1
		for _, line := range lines {
			assert.Len(t, []rune(line), want, "row %q", line)
		}
	})

	t.Run("emoji widens its column beyond ascii of equal length", func(t *testing.T) {
		t.Parallel()
		wide, ok := markdown.FormatTable([]string{"| ab😀 |", "| x |"})
		require.True(t, ok)
		narrow, ok := markdown.FormatTable([]string{"| abc |", "| x |"})
		require.True(t, ok)
		wideLen := len([]rune(strings.SplitN(wide, "\n", 2)[0]))
		narrowLen := len([]rune(strings.SplitN(narrow, "\n", 2)[0]))
		assert.Equal(t, narrowLen+1, wideLen)
	})

	t.Run("cell text appears verbatim in the output", func(t *testing.T) {
		t.Parallel()
		cells := []string{"alpha", "beta", "gamma", "delta"}
		out, ok := markdown.FormatTable([]string{
			"| alpha | beta |",
			"|-------|------|",
			"| gamma | delta |",
		})
		require.True(t, ok)
		for _, c := range cells {
			assert.Contains(t, out, c)
		}
	})

	t.Run("ends with a blank line", func(t *testing.T) {
		t.Parallel()
		out, ok := markdown.FormatTable([]string{"| a |", "| b |"})
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(out, "┘\n\n"))
	})
}
