package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

var testLevels = []string{"Classic", "Pyramid", "Checkerboard"}

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuSelectsCampaign(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), testLevels), keyEnter)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil, expected campaign")
	}
	if sel.GameID != "breakout" || sel.StartLevel != 0 {
		t.Errorf("Selected() = %+v, expected breakout from level 0", *sel)
	}
}

func TestMenuSelectsEndless(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), testLevels), keyDown, keyEnter)

	if sel := m.Selected(); sel == nil || sel.GameID != "breakout_endless" {
		t.Errorf("Selected() = %+v, expected breakout_endless", sel)
	}
}

func TestMenuLevelSelect(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), testLevels), keyDown, keyDown, keyEnter)

	if !m.inLevelSelect {
		t.Fatal("expected level picker")
	}
	if !strings.Contains(m.View(), "Pyramid") {
		t.Error("level picker does not list level names")
	}

	// Cursor stops at the last level
	m = press(m, keyDown, keyDown, keyDown, keyEnter)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after picking a level")
	}
	if sel.GameID != "breakout" || sel.StartLevel != 2 {
		t.Errorf("Selected() = %+v, expected breakout from level 2", *sel)
	}
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), testLevels), keyDown, keyDown, keyEnter, keyEsc)

	if m.inLevelSelect {
		t.Error("Esc did not leave the level picker")
	}
	if m.IsQuitting() {
		t.Error("Esc in the level picker should not quit")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), testLevels), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab did not open the scoreboard")
	}

	m = press(NewMenuModel(core.DefaultConfig(), testLevels), keyUp, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"●●", 6, "  ●●"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
