package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ring-runner/internal/core"
	"github.com/vovakirdan/ring-runner/internal/storage"
)

// fakeGame counts steps and remembers the last input.
type fakeGame struct {
	cfg      core.RuntimeConfig
	resets   int
	steps    int
	jumps    int
	score    int
	resetErr error
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) error {
	if g.resetErr != nil {
		return g.resetErr
	}
	g.cfg = cfg
	g.resets++
	g.steps, g.score = 0, 0
	return nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionJump) {
		g.jumps++
		g.score += 10
	}
	return core.StepResult{State: g.State(), Jumped: in.Has(core.ActionJump)}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, Rings: g.score / 10, Ticks: g.steps}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, g *fakeGame, board *storage.Board) Model {
	t.Helper()
	m, err := NewModel(g, board, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, "tester", nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func openBoard(t *testing.T) *storage.Board {
	t.Helper()
	b, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestNewModelReservesFooter(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, nil)

	if g.cfg.ScreenW != 40 || g.cfg.ScreenH != 11 {
		t.Errorf("game screen = %dx%d, want 40x11", g.cfg.ScreenW, g.cfg.ScreenH)
	}
}

func TestNewModelResetError(t *testing.T) {
	g := &fakeGame{resetErr: errors.New("boom")}
	_, err := NewModel(g, nil, core.DefaultConfig(), "tester", nil)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want wrapped reset error", err)
	}
}

func TestModelJumpReachesGameOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	// Key repeat before a tick is one request.
	m = update(m, keyMsg(" "))
	m = update(m, keyMsg(" "))
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})

	if g.steps != 2 {
		t.Errorf("steps = %d, want 2", g.steps)
	}
	if g.jumps != 1 {
		t.Errorf("jumps = %d, want 1", g.jumps)
	}
	if m.State().Score != 10 {
		t.Errorf("score = %d, want 10", m.State().Score)
	}
}

func TestModelHeldJumpKeyJumpsOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }
	frame := time.Second / 60

	// A held key repeats every other tick for five seconds.
	for i := 0; i < 300; i++ {
		if i%2 == 0 {
			m = update(m, keyMsg(" "))
		}
		m = update(m, TickMsg{})
		clock = clock.Add(frame)
	}
	if g.jumps != 1 {
		t.Fatalf("held key produced %d jumps, want 1", g.jumps)
	}

	// Released and pressed again.
	clock = clock.Add(200 * time.Millisecond)
	m = update(m, keyMsg(" "))
	m = update(m, TickMsg{})
	if g.jumps != 2 {
		t.Errorf("second press: jumps = %d, want 2", g.jumps)
	}
}

func TestModelLeaderboardFreezesRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, openBoard(t))

	m = update(m, keyMsg("tab"))
	m = update(m, TickMsg{})
	if g.steps != 0 {
		t.Errorf("run advanced under the leaderboard: %d steps", g.steps)
	}
	if !strings.Contains(m.View(), "LEADERBOARD") {
		t.Error("leaderboard not shown")
	}

	m = update(m, keyMsg("esc"))
	m = update(m, TickMsg{})
	if g.steps != 1 {
		t.Errorf("steps after leaving board = %d, want 1", g.steps)
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("run not shown after leaving the leaderboard")
	}
}

func TestModelRestartRecordsRun(t *testing.T) {
	g := &fakeGame{}
	board := openBoard(t)
	m := newTestModel(t, g, board)

	m = update(m, keyMsg(" "))
	m = update(m, TickMsg{})
	m = update(m, keyMsg("r"))
	m = update(m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	runs, err := board.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 10 || runs[0].Player != "tester" {
		t.Errorf("board = %+v", runs)
	}
	if len(m.Finished()) != 1 {
		t.Errorf("Finished = %d runs, want 1", len(m.Finished()))
	}
}

func TestModelQuitRecordsOnce(t *testing.T) {
	g := &fakeGame{}
	board := openBoard(t)
	m := newTestModel(t, g, board)

	m = update(m, TickMsg{})
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
	if stats, _ := board.Stats(); stats.Runs != 1 {
		t.Errorf("recorded %d runs, want 1", stats.Runs)
	}
}

func TestModelQuitWithoutTicksRecordsNothing(t *testing.T) {
	board := openBoard(t)
	m := newTestModel(t, &fakeGame{}, board)

	m = update(m, keyMsg("q"))
	if stats, _ := board.Stats(); stats.Runs != 0 {
		t.Errorf("recorded %d runs, want 0", stats.Runs)
	}
	if len(m.Finished()) != 0 {
		t.Errorf("Finished = %d, want 0", len(m.Finished()))
	}
}

func TestModelWithoutBoard(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	m = update(m, TickMsg{})
	m = update(m, keyMsg("q"))

	if len(m.Finished()) != 1 {
		t.Errorf("Finished = %d, want 1", len(m.Finished()))
	}
}

type fakeBell struct{ due bool }

func (b *fakeBell) Take() bool {
	due := b.due
	b.due = false
	return due
}

func TestModelBellRidesFrame(t *testing.T) {
	bell := &fakeBell{}
	m := newTestModel(t, &fakeGame{}, nil).WithBell(bell)

	if strings.Contains(m.View(), "\a") {
		t.Error("quiet bell wrote BEL")
	}

	bell.due = true
	if !strings.HasPrefix(m.View(), "\a") {
		t.Error("due bell should start the frame with BEL")
	}
	if strings.Contains(m.View(), "\a") {
		t.Error("bell rang again on the next frame")
	}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionJump},
		{"w", core.ActionJump},
		{"p", core.ActionPause},
		{"tab", core.ActionBoard},
		{"esc", core.ActionBack},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(keyMsg(tt.key)); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, 'o', core.ColorRing)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "o") {
		t.Errorf("rendered %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
