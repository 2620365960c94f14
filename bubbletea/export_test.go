package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// Hooks for tests.

// SaveTickFor returns the autosave tick for the model's latest edit.
func SaveTickFor(m Model) tea.Msg { return saveTickMsg{seq: m.editSeq} }

// StaleSaveTick returns an autosave tick for a superseded edit.
func StaleSaveTick() tea.Msg { return saveTickMsg{seq: -1} }

// Truncate exposes truncate.
var Truncate = truncate
