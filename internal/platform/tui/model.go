package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/ring-runner/internal/core"
	"github.com/vovakirdan/ring-runner/internal/storage"
)

// footerHeight is the number of terminal rows reserved below the playfield.
const footerHeight = 1

// jumpHoldWindow is the longest gap between jump key events that still
// counts as the same held key. Terminals report a held key as a stream of
// repeats and never report the release.
const jumpHoldWindow = 150 * time.Millisecond

// Game is what the platform drives: one run at a time, one tick per Step.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Bell is a terminal bell that is due at most once per frame.
type Bell interface {
	// Take reports whether the bell is due and resets it.
	Take() bool
}

// Model is the Bubble Tea model for a runner session, local or over SSH.
// The playfield size is fixed when the model is created; resizes only
// affect the leaderboard.
type Model struct {
	game        Game
	screen      *core.Screen
	board       *storage.Board
	config      core.RuntimeConfig
	player      string
	logger      *log.Logger
	inputFrame  core.InputFrame
	gameState   core.GameState
	keys        KeyMap
	help        help.Model
	leaderboard LeaderboardModel
	showBoard   bool
	best        int
	startedAt   time.Time
	finished    []storage.Run
	quitting    bool
	lastJumpKey time.Time
	now         func() time.Time
	bell        Bell
}

// NewModel creates a session model and starts the first run.
// cfg describes the whole terminal; the game gets all rows but the footer.
func NewModel(game Game, board *storage.Board, cfg core.RuntimeConfig, player string, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	if err := game.Reset(gameCfg); err != nil {
		return Model{}, fmt.Errorf("start %s: %w", game.ID(), err)
	}

	m := Model{
		game:        game,
		screen:      core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		board:       board,
		config:      gameCfg,
		player:      player,
		logger:      logger,
		inputFrame:  core.NewInputFrame(),
		gameState:   game.State(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		leaderboard: NewLeaderboardModel(board, cfg.ScreenW, cfg.ScreenH),
		startedAt:   time.Now(),
		now:         time.Now,
	}
	m.best = m.loadBest()
	return m, nil
}

// WithBell returns the model with a terminal bell rung through its frames.
func (m Model) WithBell(b Bell) Model {
	m.bell = b
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showBoard {
			return m.updateLeaderboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.leaderboard, cmd = m.leaderboard.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during a run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBoard:
		m.leaderboard.Refresh()
		m.showBoard = true
	case core.ActionJump:
		if m.jumpHeld() {
			return m, nil
		}
		m.inputFrame.Set(action)
	case core.ActionNone, core.ActionBack:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// jumpHeld records a jump key event and reports whether it continues a key
// that is still held. Only the first event after a gap is a press.
func (m *Model) jumpHeld() bool {
	now := m.now()
	held := !m.lastJumpKey.IsZero() && now.Sub(m.lastJumpKey) < jumpHoldWindow
	m.lastJumpKey = now
	return held
}

// updateLeaderboard forwards input to the leaderboard while it is shown.
func (m Model) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.leaderboard, cmd = m.leaderboard.Update(msg)

	switch {
	case m.leaderboard.IsQuitting():
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	case m.leaderboard.IsGoingBack():
		m.showBoard = false
	}
	return m, cmd
}

// handleTick processes simulation ticks. The run is frozen while the
// leaderboard covers it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.finishRun()
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			// The same configuration already started once.
			m.logger.Error("cannot restart run", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finishRun records the current run on the board once. Runs that never
// ticked are not recorded.
func (m *Model) finishRun() {
	if m.gameState.Ticks == 0 {
		return
	}
	run := storage.Run{
		Player:    m.player,
		Score:     m.gameState.Score,
		Rings:     m.gameState.Rings,
		Ticks:     m.gameState.Ticks,
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	}
	// Mark as recorded even if the board is unavailable.
	m.gameState.Ticks = 0

	if m.board != nil {
		stored, err := m.board.RecordRun(run)
		if err != nil {
			m.logger.Warn("cannot record run", "player", m.player, "error", err)
		} else {
			run = stored
		}
	}
	m.finished = append(m.finished, run)
	m.best = max(m.best, run.Score)
	m.logger.Debug("run finished", "player", run.Player, "score", run.Score, "rings", run.Rings)
}

// loadBest returns the best score on the board, 0 without one.
func (m Model) loadBest() int {
	if m.board == nil {
		return 0
	}
	best, err := m.board.Best()
	if err != nil {
		m.logger.Warn("cannot read best score", "error", err)
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.leaderboard.View()
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen) + "\n" + m.footer()
	if m.bell != nil && m.bell.Take() {
		// BEL has no width, so the renderer writes it with the frame.
		view = "\a" + view
	}
	return view
}

// footer renders the status and key help line.
func (m Model) footer() string {
	status := fmt.Sprintf(" Rings %s · Best %s ",
		humanize.Comma(int64(m.gameState.Rings)),
		humanize.Comma(int64(max(m.best, m.gameState.Score))),
	)
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	return statusStyle.Render(status) + " " + m.help.ShortHelpView(m.keys.ShortHelp())
}

// State returns the state of the current run.
func (m Model) State() core.GameState {
	return m.gameState
}

// Finished returns the runs completed in this session, in order.
func (m Model) Finished() []storage.Run {
	return m.finished
}

// IsQuitting returns true if the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal and returns the
// runs finished during the session.
func Run(game Game, board *storage.Board, cfg core.RuntimeConfig, player string, logger *log.Logger) ([]storage.Run, error) {
	model, err := NewModel(game, board, cfg, player, logger)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.Finished(), nil
	}
	return nil, nil
}
