package bubbletea_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	bt "github.com/stickpad/stickpad/bubbletea"
	"github.com/stickpad/stickpad/config"
	"github.com/stickpad/stickpad/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (bt.Model, *note.Store) {
	t.Helper()
	s, err := note.NewStore(t.TempDir())
	require.NoError(t, err)
	n, err := s.Create()
	require.NoError(t, err)
	text, err := s.Load(n.ID)
	require.NoError(t, err)
	return bt.New(s, config.Default(), n, text), s
}

func update(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(bt.Model)
	require.True(t, ok)
	return nm
}

func typeRunes(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func sized(t *testing.T, m bt.Model) bt.Model {
	t.Helper()
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestModelEditing(t *testing.T) {
	t.Parallel()

	t.Run("typing marks the note dirty", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)

		assert.False(t, m.Dirty())
		m = typeRunes(t, m, "x")
		assert.True(t, m.Dirty())
	})

	t.Run("autosave tick persists the latest edit", func(t *testing.T) {
		t.Parallel()
		m, s := newTestModel(t)
		m = sized(t, m)
		m = typeRunes(t, m, "hi")

		m = update(t, m, bt.SaveTickFor(m))
		assert.False(t, m.Dirty())

		text, err := s.Load(m.Note().ID)
		require.NoError(t, err)
		assert.Contains(t, text, "hi")
	})

	t.Run("stale autosave tick is ignored", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)
		m = typeRunes(t, m, "hi")

		m = update(t, m, bt.StaleSaveTick())
		assert.True(t, m.Dirty())
	})

	t.Run("saving updates the title from the first line", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)

		m.Editor.SetValue("")
		m = typeRunes(t, m, "Urgent")
		m = update(t, m, bt.SaveTickFor(m))
		assert.Equal(t, "Urgent", m.Note().Title)
	})
}

func TestModelPreview(t *testing.T) {
	t.Parallel()

	t.Run("tab renders the note body", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)
		m.Editor.SetValue("Plans\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		view := m.View()
		assert.Contains(t, view, "Plans")
		assert.Contains(t, view, "┌─────┬─────┐")
		assert.Contains(t, view, "│ 1   │ 2   │")
	})

	t.Run("tab toggles back to the editor", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)
		m.Editor.SetValue("Plans\n\nbody text\n")

		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

		// Typing works again after returning to the edit tab.
		m = typeRunes(t, m, "x")
		assert.True(t, m.Dirty())
	})
}

func TestModelManager(t *testing.T) {
	t.Parallel()

	t.Run("ctrl+l lists all notes", func(t *testing.T) {
		t.Parallel()
		m, s := newTestModel(t)
		m = sized(t, m)
		_, err := s.Create()
		require.NoError(t, err)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
		assert.Contains(t, m.View(), "All Notes")
	})

	t.Run("enter opens the newest note", func(t *testing.T) {
		t.Parallel()
		m, s := newTestModel(t)
		m = sized(t, m)
		other, err := s.Create()
		require.NoError(t, err)
		require.NoError(t, s.SaveText(other.ID, "Second\n\nbody\n"))

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, other.ID, m.Note().ID)
	})

	t.Run("esc returns to the editor", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		m = typeRunes(t, m, "x")
		assert.True(t, m.Dirty())
	})
}

func TestModelNotes(t *testing.T) {
	t.Parallel()

	t.Run("ctrl+n creates and opens a fresh note", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestModel(t)
		m = sized(t, m)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
		assert.Equal(t, "note2", m.Note().ID)
		assert.Equal(t, "New Note", m.Note().Title)
	})

	t.Run("ctrl+k cycles the palette", func(t *testing.T) {
		t.Parallel()
		m, s := newTestModel(t)
		m = sized(t, m)

		first := m.Note().Color
		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
		second := m.Note().Color

		assert.NotEqual(t, first, second)
		assert.Equal(t, config.Default().Colors[1], second)
		assert.Equal(t, second, s.Color(m.Note().ID))
	})
}

func TestModelEndToEnd(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("New Note"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}
