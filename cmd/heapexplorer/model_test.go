package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.trace")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func Test_Model_StepsForward(t *testing.T) {
	path := writeTrace(t, "a 0 64\na 1 32\nf 0\n")
	m, err := NewModel(path, "explicit", 4096)
	require.NoError(t, err)
	m = sized(t, m)

	next, _ := m.Update(keyMsg('n'))
	m = next.(Model)
	require.Equal(t, 1, m.next)
	require.Equal(t, 64, m.alloc.Used())

	next, _ = m.Update(keyMsg('n'))
	m = next.(Model)
	require.Equal(t, 2, m.next)
	require.Equal(t, 96, m.alloc.Used())
}

func Test_Model_StepsBack(t *testing.T) {
	path := writeTrace(t, "a 0 64\na 1 32\n")
	m, err := NewModel(path, "explicit", 4096)
	require.NoError(t, err)
	m = sized(t, m)

	next, _ := m.Update(keyMsg('G'))
	m = next.(Model)
	require.Equal(t, 2, m.next)

	next, _ = m.Update(keyMsg('p'))
	m = next.(Model)
	require.Equal(t, 1, m.next)
	require.Equal(t, 64, m.alloc.Used())

	next, _ = m.Update(keyMsg('g'))
	m = next.(Model)
	require.Zero(t, m.next)
	require.Zero(t, m.alloc.Used())
}

func Test_Model_RunsToEnd(t *testing.T) {
	path := writeTrace(t, "a 0 64\nr 0 128\nf 0\n")
	m, err := NewModel(path, "implicit", 4096)
	require.NoError(t, err)
	m = sized(t, m)

	next, _ := m.Update(keyMsg('G'))
	m = next.(Model)
	require.Equal(t, 3, m.next)
	require.Zero(t, m.alloc.Used())
	require.NoError(t, m.alloc.Validate())
}

func Test_Model_SurvivesNoSpace(t *testing.T) {
	path := writeTrace(t, "a 0 40\na 1 40\n")
	m, err := NewModel(path, "explicit", 64)
	require.NoError(t, err)
	m = sized(t, m)

	next, _ := m.Update(keyMsg('G'))
	m = next.(Model)
	require.Equal(t, 2, m.next)
	require.Nil(t, m.lastErr, "running out of space is not fatal")
	require.Contains(t, m.status, "no space")
}

func Test_Model_RejectsBadVariant(t *testing.T) {
	path := writeTrace(t, "a 0 8\n")
	_, err := NewModel(path, "buddy", 4096)
	require.Error(t, err)
}

func Test_Model_ViewRendersBlocks(t *testing.T) {
	path := writeTrace(t, "a 0 64\n")
	m, err := NewModel(path, "explicit", 4096)
	require.NoError(t, err)
	m = sized(t, m)

	next, _ := m.Update(keyMsg('n'))
	m = next.(Model)

	out := m.View()
	require.Contains(t, out, "used")
	require.Contains(t, out, "free")
	require.Contains(t, out, "op 1/1")
}
