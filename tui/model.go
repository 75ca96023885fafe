package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"voicesep/config"
	"voicesep/score"
)

// keyMap mirrors the teacher's param-tuning keymap: one binding per action,
// each carrying its own help text.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Rerun key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "select param above"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "select param below"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease value"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase value"),
	),
	Rerun: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rerun with current params"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	deps Dependencies
	opts Options

	shared *config.SharedConfig
	local  config.EngineConfig // the copy the param panel edits directly
	params *ParamManager

	in score.Score

	updates chan Update
	cancel  context.CancelFunc

	epoch    int
	running  bool
	done     bool
	lastCost CostBreakdown
	lastSpan string
	history  []float64
	result   score.Voicing
	err      error

	width, height int
}

// Run launches the Bubble Tea program and blocks until the user quits.
func Run(deps Dependencies, opts Options) error {
	in, err := deps.ScoreLoader.Load(opts.ScorePath)
	if err != nil {
		return fmt.Errorf("tui: failed to load score: %w", err)
	}

	cfg := deps.ConfigProvider.Get()
	shared := config.NewSharedConfig(cfg)

	m := model{
		deps:   deps,
		opts:   opts,
		shared: shared,
		local:  cfg,
		in:     in,
	}
	m.params = NewParamManager(paramsFor(&m.local))

	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return m.startRun()
}

// startRun kicks off a new separation epoch against the current local
// config and returns the command that waits for its first update.
func (m *model) startRun() tea.Cmd {
	m.shared.Update(m.local)
	m.epoch++
	m.running = true
	m.done = false
	m.history = nil

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	updates := make(chan Update, 64)
	m.updates = updates

	epoch := m.epoch
	go m.deps.Runner.Run(ctx, m.in, m.shared, updates, epoch)

	return waitForUpdate(updates)
}

type updateMsg Update

func waitForUpdate(updates chan Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return updateMsg{Done: true}
		}
		return updateMsg(u)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case updateMsg:
		if msg.Epoch != 0 && msg.Epoch != m.epoch {
			return m, nil // stale update from a cancelled run
		}
		if msg.Done {
			m.running = false
			m.done = true
			m.result = msg.Result
			if !m.opts.DryRun {
				if err := m.deps.ScoreWriter.Write(m.opts.OutputPath, m.result); err != nil {
					m.err = err
				}
			}
			return m, nil
		}
		m.lastCost = msg.Cost
		m.lastSpan = fmt.Sprintf("%d:%d", msg.Start, msg.Stop)
		m.history = append(m.history, msg.Cost.Total)
		if len(m.history) > 64 {
			m.history = m.history[len(m.history)-64:]
		}
		return m, waitForUpdate(m.updates)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.params.SelectPrevious()
	case key.Matches(msg, keys.Down):
		m.params.SelectNext()
	case key.Matches(msg, keys.Left):
		m.params.Decrease()
	case key.Matches(msg, keys.Right):
		m.params.Increase()
	case key.Matches(msg, keys.Rerun):
		if m.cancel != nil {
			m.cancel()
		}
		return m, m.startRun()
	}
	return m, nil
}
