package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantDir  core.Direction
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft, false},
		{"a", runeKey('a'), core.DirLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight, false},
		{"d", runeKey('d'), core.DirRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp, false},
		{"w", runeKey('w'), core.DirUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.DirDown, false},
		{"s", runeKey('s'), core.DirDown, false},
		{"q", runeKey('q'), core.DirNone, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.DirNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.DirNone, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.DirNone, false},
		{"x", runeKey('x'), core.DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, quit := km.Direction(tt.msg)
			if dir != tt.wantDir || quit != tt.wantQuit {
				t.Errorf("Direction(%q) = %v, %v; want %v, %v", tt.msg.String(), dir, quit, tt.wantDir, tt.wantQuit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, want 5", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d groups, want 2", len(km.FullHelp()))
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(180)
	h.Press(core.DirRight, 1000)

	tests := []struct {
		now  int64
		want core.Direction
	}{
		{1000, core.DirRight},
		{1179, core.DirRight},
		{1180, core.DirNone},
	}
	for _, tt := range tests {
		if got := h.Held(tt.now); got != tt.want {
			t.Errorf("Held(%d) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(180)
	h.Press(core.DirUp, 0)
	h.Press(core.DirUp, 150)

	if got := h.Held(300); got != core.DirUp {
		t.Errorf("auto-repeat should extend the hold, Held(300) = %v", got)
	}
}

func TestHeldKeysCombineAndOpposite(t *testing.T) {
	h := NewHeldKeys(180)
	h.Press(core.DirRight, 0)
	h.Press(core.DirUp, 10)

	if got := h.Held(20); got != core.DirRight|core.DirUp {
		t.Errorf("Held() = %v, want Right+Up", got)
	}

	h.Press(core.DirLeft, 30)
	if got := h.Held(40); got != core.DirLeft|core.DirUp {
		t.Errorf("pressing Left should release Right, Held() = %v", got)
	}

	h.Press(core.DirNone, 50)
	h.Reset()
	if got := h.Held(60); got != core.DirNone {
		t.Errorf("after Reset Held() = %v", got)
	}
}
