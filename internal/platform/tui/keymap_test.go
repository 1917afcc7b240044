package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/linecraft/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"wasd left", runeKey("a"), core.ActionLeft, false},
		{"wasd down", runeKey("s"), core.ActionDown, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"slot 2", runeKey("2"), core.ActionSlot2, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextSlot, false},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevSlot, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey("1"), &frame))
	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame))
	assert.True(t, frame.Has(core.ActionSlot1))
	assert.True(t, frame.Has(core.ActionDown))

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(runeKey("l")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(runeKey("b")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("x")))
}
