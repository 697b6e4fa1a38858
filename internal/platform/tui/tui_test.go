package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-triplets/internal/core"
	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"left", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter takes", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"undo", runeKey('u'), core.ActionUndo, false},
		{"shuffle", runeKey('x'), core.ActionShuffle, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	release := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouseToFrame(release, &frame) {
		t.Error("release should not count as a click")
	}
	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(right, &frame) {
		t.Error("right button should not count as a click")
	}

	press := tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should count as a click")
	}
	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Click{X: 7, Y: 3}) {
		t.Errorf("Clicks = %v, expected [{7 3}]", frame.Clicks)
	}
}

func TestRenderScreenSkipsWideContinuation(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "世b")
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "世b") {
		t.Errorf("line 0 = %q, expected it to contain %q", lines[0], "世b")
	}
	if !strings.Contains(lines[1], "ok") {
		t.Errorf("line 1 = %q, expected it to contain %q", lines[1], "ok")
	}
}

type fixedBest int

func (f fixedBest) BestLevel() int { return int(f) }

func TestMenuStartLevelRange(t *testing.T) {
	m := NewMenuModel(fixedBest(3), core.DefaultConfig())
	if m.StartLevel() != 3 {
		t.Fatalf("StartLevel() = %d, expected best level 3", m.StartLevel())
	}

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	for range 5 {
		press(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.StartLevel() != 4 {
		t.Errorf("StartLevel() = %d, expected it capped at best+1 = 4", m.StartLevel())
	}

	for range 10 {
		press(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.StartLevel() != 1 {
		t.Errorf("StartLevel() = %d, expected floor 1", m.StartLevel())
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Started() {
		t.Error("Enter on the start item should start a game")
	}
}

func TestMenuWithoutProgress(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if m.StartLevel() != 1 {
		t.Errorf("StartLevel() = %d, expected 1", m.StartLevel())
	}
	if !strings.Contains(m.View(), "T R I P L E T S") {
		t.Error("menu view should show the title")
	}
}

func TestStoreRecorder(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	rec := StoreRecorder(store, nil)
	rec.RecordLevel(triplets.LevelResult{
		Level:    2,
		Outcome:  triplets.OutcomeWon,
		Score:    60,
		Moves:    18,
		Duration: 45 * time.Second,
	})

	recent, err := store.RecentLevelResults(triplets.GameID, 10)
	if err != nil {
		t.Fatalf("RecentLevelResults() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 result, got %d", len(recent))
	}
	r := recent[0]
	if r.Level != 2 || r.Outcome != storage.OutcomeWon || r.Score != 60 || r.Moves != 18 || r.Duration != 45*time.Second {
		t.Errorf("unexpected stored result: %+v", r)
	}

	// A nil store drops results silently.
	StoreRecorder(nil, nil).RecordLevel(triplets.LevelResult{Level: 1})
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}})

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	// Start -> Best -> Scoreboard
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "SCOREBOARD") {
		t.Error("scoreboard view should show its title")
	}

	press(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if !strings.Contains(m.View(), "TRIPLETS") {
		t.Error("game view should show the HUD")
	}

	press(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after leaving the game", m.screen)
	}

	press(runeKey('q'))
	if !m.quitting {
		t.Error("q on the menu should end the session")
	}
}
