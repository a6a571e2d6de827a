package tuitest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Bakery", StripANSI("\x1b[1;38;2;255;152;0mBakery\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestContainsInOrder(t *testing.T) {
	out := "Home\nBakery\nSearch\n"
	assert.True(t, ContainsInOrder(out, "Home", "Search"))
	assert.False(t, ContainsInOrder(out, "Search", "Home"))
}

func TestType(t *testing.T) {
	msgs := Type("ab")
	assert.Equal(t, []tea.Msg{KeyPress("a"), KeyPress("b")}, msgs)
}

func TestRunCmd(t *testing.T) {
	assert.Nil(t, RunCmd(t, nil))
	assert.Equal(t, tea.QuitMsg{}, RunCmd(t, tea.Quit))

	slow := func() tea.Msg {
		time.Sleep(10 * time.Millisecond)
		return KeyEnter()
	}
	assert.Equal(t, KeyEnter(), RunCmd(t, slow))
}
