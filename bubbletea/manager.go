package bubbletea

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/stickpad/stickpad"
)

var _ list.Item = noteItem{}

// noteItem adapts a stored note to the bubbles list component.
type noteItem struct {
	note stickpad.Note
}

func (i noteItem) Title() string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(i.note.Color)).Render("●")
	return swatch + " " + i.note.Title
}

func (i noteItem) Description() string {
	return i.note.ModTime.Format("2006-01-02 15:04")
}

func (i noteItem) FilterValue() string { return i.note.Title }

// managerModel is the "all notes" picker.
type managerModel struct {
	list list.Model
}

func newManager(theme stickpad.Theme) managerModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "All Notes"
	l.Styles.Title = lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return managerModel{list: l}
}

// setNotes replaces the list contents, newest first.
func (mm managerModel) setNotes(notes []stickpad.Note) managerModel {
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n}
	}
	mm.list.SetItems(items)
	return mm
}
