// Package bubbletea provides the Bubble Tea TUI for stickpad: an
// Edit/Preview tabbed note window and a note-manager list.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program. It blocks until the
// program exits. Cancelling the context quits the program, saving
// first as on any quit path.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return fm, nil
}

// saveTickMsg fires after the autosave delay. The sequence number ties
// a tick to the edit that scheduled it: stale ticks are ignored so the
// note saves once, after the last edit of a burst.
type saveTickMsg struct {
	seq int
}
