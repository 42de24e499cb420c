package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelikan/tally/internal/config"
	"github.com/avelikan/tally/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.handleQuit(key); handled {
		return next, cmd
	}
	if next, handled := m.handleNavigation(key); handled {
		return next, nil
	}
	if next, cmd, handled := m.handleTaskAddStart(key); handled {
		return next, cmd
	}
	if next, handled := m.handleTaskToggle(key); handled {
		return next, nil
	}
	if next, handled := m.handleTaskReset(key); handled {
		return next, nil
	}
	if next, handled := m.handleTaskRemove(key); handled {
		return next, nil
	}
	if next, handled := m.handleThemeCycle(key); handled {
		return next, nil
	}
	if next, handled := m.handleExport(key); handled {
		return next, nil
	}
	return m, nil
}

func (m Model) handleQuit(key string) (Model, tea.Cmd, bool) {
	if key != "q" {
		return m, nil, false
	}
	return m, tea.Quit, true
}

func (m Model) handleNavigation(key string) (Model, bool) {
	switch key {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	default:
		return m, false
	}
	m.refresh()
	return m, true
}

func (m Model) handleTaskAddStart(key string) (Model, tea.Cmd, bool) {
	if key != "n" {
		return m, nil, false
	}
	m.adding = true
	m.input.Reset()
	return m, m.input.Focus(), true
}

func (m Model) handleTaskToggle(key string) (Model, bool) {
	if key != " " && key != "enter" {
		return m, false
	}
	target, ok := m.focusedTask()
	if !ok {
		return m, true
	}
	if err := m.store.Toggle(target.ID); err != nil {
		m.setStatusError(fmt.Sprintf("Error toggling timer: %v", err))
	}
	m.refresh()
	return m, true
}

func (m Model) handleTaskReset(key string) (Model, bool) {
	if key != "r" {
		return m, false
	}
	if target, ok := m.focusedTask(); ok {
		m.confirm = &ConfirmState{Action: ConfirmReset, TaskID: target.ID, TaskName: target.Name}
	}
	return m, true
}

func (m Model) handleTaskRemove(key string) (Model, bool) {
	if key != "x" && key != "delete" {
		return m, false
	}
	if target, ok := m.focusedTask(); ok {
		m.confirm = &ConfirmState{Action: ConfirmRemove, TaskID: target.ID, TaskName: target.Name}
	}
	return m, true
}

func (m Model) handleThemeCycle(key string) (Model, bool) {
	if key != "t" {
		return m, false
	}
	m.themeName = nextThemeName(m.themeName)
	m.theme = themeByName(m.themeName)
	util.LogError("persist theme", m.settings.Set(m.ctx, config.SettingTheme, m.themeName))
	return m, true
}

func (m Model) handleExport(key string) (Model, bool) {
	if key != "e" {
		return m, false
	}
	if len(m.tasks) == 0 {
		m.Message = "Nothing to export."
		return m, true
	}
	now := m.now()
	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatusError(fmt.Sprintf("Error creating reports dir: %v", err))
		return m, true
	}
	path := filepath.Join(dir, fmt.Sprintf("tally-%s.pdf", now.Format("2006-01-02-150405")))
	if err := GeneratePDFReport(m.tasks, now, path); err != nil {
		m.setStatusError(fmt.Sprintf("Error exporting: %v", err))
		return m, true
	}
	m.Message = "Exported " + path
	return m, true
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if _, err := m.store.Add(name); err != nil {
			m.setStatusError("Task name must not be empty.")
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.refresh()
		m.cursor = len(m.tasks) - 1
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.confirm
	switch msg.String() {
	case "y", "enter":
		m.confirm = nil
		var err error
		switch pending.Action {
		case ConfirmReset:
			err = m.store.Reset(pending.TaskID)
		case ConfirmRemove:
			err = m.store.Remove(pending.TaskID)
		}
		if err != nil {
			m.setStatusError(fmt.Sprintf("Error: %v", err))
		}
		m.refresh()
		return m, nil
	case "n", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatusError(msg string) {
	m.err = fmt.Errorf("%s", msg)
}
