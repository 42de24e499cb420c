package tui

import (
	"context"
	"time"

	"github.com/avelikan/tally/internal/config"
	"github.com/avelikan/tally/internal/models"
	"github.com/avelikan/tally/internal/store"
	"github.com/avelikan/tally/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a display refresh. It never mutates accounting
// state; elapsed time is re-derived from the wall clock on render.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the root bubbletea model.
type Model struct {
	store    *store.TimerStore
	settings store.KV
	ctx      context.Context

	tasks  []models.Task
	cursor int
	scroll int

	adding  bool
	input   textinput.Model
	confirm *ConfirmState

	theme     Theme
	themeName string

	Message       string
	err           error
	width, height int

	now func() time.Time
}

func NewModel(ctx context.Context, st *store.TimerStore, settings store.KV) Model {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = config.MaxNameLength
	ti.Width = 40

	themeName := "default"
	if name, ok := settings.Get(ctx, config.SettingTheme); ok {
		themeName = name
	}

	m := Model{
		store:     st,
		settings:  settings,
		ctx:       ctx,
		input:     ti,
		themeName: themeName,
		theme:     themeByName(themeName),
		now:       time.Now,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		// Redraw only; the accounting state is untouched.
		return m, tickCmd()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Transient feedback clears on the next keypress.
		if m.err != nil || m.Message != "" {
			m.err = nil
			m.Message = ""
			return m, nil
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.handleNormalMode(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refresh re-reads the task snapshot and keeps the cursor in range.
func (m *Model) refresh() {
	m.tasks = m.store.Tasks()
	if len(m.tasks) == 0 {
		m.cursor, m.scroll = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, len(m.tasks)-1)
	maxScroll := len(m.tasks) - config.MaxVisibleTasks
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.scroll = util.Clamp(m.scroll, 0, maxScroll)
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+config.MaxVisibleTasks {
		m.scroll = m.cursor - config.MaxVisibleTasks + 1
	}
}

func (m Model) focusedTask() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}
