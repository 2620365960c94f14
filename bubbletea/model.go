package bubbletea

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stickpad/stickpad"
	"github.com/stickpad/stickpad/config"
	"github.com/stickpad/stickpad/markdown"
	"github.com/stickpad/stickpad/note"
)

var _ tea.Model = Model{}

// view selects what the window is currently showing.
type view int

const (
	viewEdit view = iota
	viewPreview
	viewManager
)

// Model is the Bubble Tea model for the stickpad TUI.
type Model struct {
	// Editor is the note text editing component. Exported for test access.
	Editor textarea.Model
	// Preview is the scrollable preview area. Exported for test access.
	Preview viewport.Model

	store    *note.Store
	cfg      config.Config
	renderer *markdown.Renderer
	styles   Styles

	current stickpad.Note
	view    view
	manager managerModel

	// editSeq increments on every edit; saveTickMsg carries the value
	// it was scheduled with so only the tick for the latest edit saves.
	editSeq int
	dirty   bool

	width  int
	height int
	ready  bool
	err    error
}

// New creates a TUI model editing the given note.
func New(store *note.Store, cfg config.Config, n stickpad.Note, text string) Model {
	ed := textarea.New()
	ed.Placeholder = "Write your note..."
	ed.CharLimit = 0
	ed.SetValue(text)
	ed.Focus()

	return Model{
		Editor:   ed,
		store:    store,
		cfg:      cfg,
		renderer: markdown.New(),
		styles:   NewStyles(cfg.Theme),
		current:  n,
		manager:  newManager(cfg.Theme),
	}
}

// Note returns the note currently being edited.
func (m Model) Note() stickpad.Note { return m.current }

// Dirty reports whether the editor has unsaved changes.
func (m Model) Dirty() bool { return m.dirty }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case saveTickMsg:
		if msg.seq == m.editSeq && m.dirty {
			m = m.save()
		}
		return m, nil
	}

	return m.updateComponents(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")

	switch m.view {
	case viewManager:
		b.WriteString(m.manager.list.View())
	case viewPreview:
		b.WriteString(m.Preview.View())
	default:
		b.WriteString(m.Editor.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	headerH := 1
	statusH := 1
	gaps := 2 // newlines around the content area
	contentH := msg.Height - headerH - statusH - gaps
	if contentH < 1 {
		contentH = 1
	}

	if !m.ready {
		m.Preview = viewport.New(msg.Width, contentH)
		m.ready = true
	} else {
		m.Preview.Width = msg.Width
		m.Preview.Height = contentH
	}
	m.Editor.SetWidth(msg.Width)
	m.Editor.SetHeight(contentH)
	m.manager.list.SetSize(msg.Width, contentH)

	if m.view == viewPreview {
		m = m.renderPreview()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.dirty {
			m = m.save()
		}
		return m, tea.Quit

	case tea.KeyTab:
		if m.view == viewManager {
			break
		}
		if m.view == viewEdit {
			m.view = viewPreview
			m.Editor.Blur()
			m = m.renderPreview()
		} else {
			m.view = viewEdit
			return m, m.Editor.Focus()
		}
		return m, nil

	case tea.KeyCtrlL:
		if m.view == viewManager {
			return m, nil
		}
		return m.openManager()

	case tea.KeyCtrlN:
		return m.newNote()

	case tea.KeyCtrlK:
		if m.view != viewManager {
			m = m.cycleColor()
		}
		return m, nil

	case tea.KeyEsc:
		if m.view == viewManager {
			m.view = viewEdit
			return m, m.Editor.Focus()
		}
	}

	if m.view == viewManager {
		return m.handleManagerKey(msg)
	}
	return m.updateComponents(msg)
}

func (m Model) handleManagerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if item, ok := m.manager.list.SelectedItem().(noteItem); ok {
			return m.openNote(item.note.ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.manager.list, cmd = m.manager.list.Update(msg)
	return m, cmd
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.view {
	case viewEdit:
		before := m.Editor.Value()
		m.Editor, cmd = m.Editor.Update(msg)
		cmds = append(cmds, cmd)
		if m.Editor.Value() != before {
			m = m.markDirty()
			cmds = append(cmds, m.scheduleSave())
		}
	case viewPreview:
		m.Preview, cmd = m.Preview.Update(msg)
		cmds = append(cmds, cmd)
	case viewManager:
		m.manager.list, cmd = m.manager.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) markDirty() Model {
	m.dirty = true
	m.editSeq++
	return m
}

// scheduleSave arms the autosave timer for the current edit.
func (m Model) scheduleSave() tea.Cmd {
	seq := m.editSeq
	return tea.Tick(m.cfg.AutosaveDelay, func(time.Time) tea.Msg {
		return saveTickMsg{seq: seq}
	})
}

func (m Model) save() Model {
	if err := m.store.SaveText(m.current.ID, m.Editor.Value()); err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.dirty = false
	m.current.Title = stickpad.Title(m.Editor.Value())
	return m
}

// renderPreview runs the markdown renderer over the note body and
// fills the preview viewport. The title and spacer lines are stripped
// here; the renderer only ever sees body text.
func (m Model) renderPreview() Model {
	title := stickpad.Title(m.Editor.Value())
	runs := m.renderer.Render(stickpad.Body(m.Editor.Value()))

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.RenderRuns(runs))
	m.Preview.SetContent(b.String())
	m.Preview.GotoTop()
	return m
}

func (m Model) openManager() (tea.Model, tea.Cmd) {
	if m.dirty {
		m = m.save()
	}
	notes, err := m.store.List()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.manager = m.manager.setNotes(notes)
	m.view = viewManager
	m.Editor.Blur()
	return m, nil
}

func (m Model) openNote(id string) (tea.Model, tea.Cmd) {
	if m.dirty {
		m = m.save()
	}
	text, err := m.store.Load(id)
	if err != nil {
		m.err = err
		return m, nil
	}
	n, err := m.store.Get(id)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.current = n
	m.Editor.SetValue(text)
	m.dirty = false
	m.view = viewEdit
	return m, m.Editor.Focus()
}

func (m Model) newNote() (tea.Model, tea.Cmd) {
	if m.dirty {
		m = m.save()
	}
	n, err := m.store.Create()
	if err != nil {
		m.err = err
		return m, nil
	}
	return m.openNote(n.ID)
}

// cycleColor advances the note background to the next palette entry.
func (m Model) cycleColor() Model {
	colors := m.cfg.Colors
	if len(colors) == 0 {
		return m
	}
	next := colors[0]
	for i, c := range colors {
		if c == m.current.Color {
			next = colors[(i+1)%len(colors)]
			break
		}
	}
	if err := m.store.SetColor(m.current.ID, next); err != nil {
		m.err = err
		return m
	}
	m.current.Color = next
	return m
}

func (m Model) headerLine() string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.current.Color)).Render("●")

	tabs := []string{"Edit", "Preview"}
	active := 0
	if m.view == viewPreview {
		active = 1
	}
	var parts []string
	for i, t := range tabs {
		if i == active && m.view != viewManager {
			parts = append(parts, m.styles.TabActive.Render(t))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(t))
		}
	}
	if m.view == viewManager {
		return swatch + " " + m.styles.TabActive.Render("All Notes")
	}

	title := truncate(m.current.Title, m.width/2)
	return swatch + " " + strings.Join(parts, " ") + "  " + m.styles.Accent.Render(title)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	state := "Saved"
	if m.dirty {
		state = "Unsaved"
	}
	hints := "Tab preview · Ctrl+L notes · Ctrl+N new · Ctrl+K color · Ctrl+C quit"
	if m.view == viewManager {
		hints = "Enter open · Esc back · Ctrl+N new · Ctrl+C quit"
	}
	return m.styles.Muted.Render(state + " · " + hints)
}
