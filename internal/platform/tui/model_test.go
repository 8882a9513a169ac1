package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func newTestModel(t *testing.T) (Model, *invaders.Game) {
	t.Helper()
	g := invaders.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}, log.New(io.Discard))
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	return m, g
}

func TestModelAppliesKeysImmediately(t *testing.T) {
	m, g := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if g.Match().Player().X != 20 {
		t.Errorf("player X = %v, expected 20", g.Match().Player().X)
	}
	if g.Match().Now() != 0 {
		t.Error("key press advanced the clock")
	}
}

func TestModelTickStepsGame(t *testing.T) {
	m, g := newTestModel(t)

	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
	_ = next.(Model)
	if g.Match().Now() == 0 {
		t.Error("tick did not advance the match")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	match := g.Match()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if g.Match() != match {
		t.Error("resize restarted the match")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Level:") {
		t.Error("View() missing HUD")
	}
	if !strings.Contains(view, "fire") {
		t.Error("View() missing key help")
	}
}

func TestLevelSelect(t *testing.T) {
	levels := config.DefaultInvadersConfig().Levels
	var model tea.Model = NewLevelSelectModel(levels, 80, 24)

	if _, ok := model.(LevelSelectModel).Selected(); ok {
		t.Fatal("Selected() reported a choice before one was made")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown}) // Stays on the last level
	view := model.View()
	if !strings.Contains(view, "Hard") {
		t.Error("View() missing level names")
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select did not quit the selector")
	}
	level, ok := model.(LevelSelectModel).Selected()
	if !ok || level != invaders.LevelHard {
		t.Errorf("Selected() = (%v, %v), expected (Hard, true)", level, ok)
	}
}

func TestLevelSelectQuit(t *testing.T) {
	levels := config.DefaultInvadersConfig().Levels
	var model tea.Model = NewLevelSelectModel(levels, 80, 24)
	model, _ = model.Update(runeKey('q'))
	if _, ok := model.(LevelSelectModel).Selected(); ok {
		t.Error("Selected() reported a choice after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorViolet)
	s.DrawTextColored(3, 0, "de", core.ColorOrange)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"abc", "de", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() output missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected unchanged text", got)
	}
}

func TestLevelTable(t *testing.T) {
	out := LevelTable(config.DefaultInvadersConfig().Levels)
	for _, want := range []string{"Level", "Easy", "Medium", "Hard", "Bunkers"} {
		if !strings.Contains(out, want) {
			t.Errorf("LevelTable() output missing %q", want)
		}
	}
}
