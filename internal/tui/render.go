package tui

import (
	"fmt"
	"strings"

	"github.com/avelikan/tally/internal/config"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render("tally — task timer"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.theme.Input.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render("enter: create  esc: cancel"))
		b.WriteString("\n")
		return m.theme.Base.Render(b.String())
	}

	if m.confirm != nil {
		b.WriteString(m.theme.Modal.Render(m.confirm.Prompt() + "\n\n" + m.theme.Dim.Render("y/enter: confirm  n/esc: cancel")))
		b.WriteString("\n")
		return m.theme.Base.Render(b.String())
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.theme.Dim.Render("No tasks yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.theme.Error.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.Message != "" {
		b.WriteString(m.theme.Elapsed.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render("space: start/pause  n: new  r: reset  x: delete  e: export  t: theme  q: quit"))
	return m.theme.Base.Render(b.String())
}

func (m Model) renderTaskList() string {
	nameWidth := config.TargetNameWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		nameWidth = m.width / 2
	}
	if nameWidth < config.MinNameWidth {
		nameWidth = config.MinNameWidth
	}

	now := m.now()
	var b strings.Builder
	end := m.scroll + config.MaxVisibleTasks
	if end > len(m.tasks) {
		end = len(m.tasks)
	}
	if m.scroll > 0 {
		b.WriteString(m.theme.Dim.Render("  ↑ more"))
		b.WriteString("\n")
	}
	for i := m.scroll; i < end; i++ {
		task := m.tasks[i]
		lead := "  "
		style := m.theme.Task
		if !task.Running {
			style = m.theme.PausedTask
		}
		if i == m.cursor {
			lead = "> "
			style = m.theme.Focused
		}

		icon := "⏸"
		if task.Running {
			icon = "⏱"
		}
		name := truncateLabel(task.Name, nameWidth)
		pad := nameWidth - len([]rune(name))
		if pad < 0 {
			pad = 0
		}
		label := fmt.Sprintf("%s%s %s%s ", lead, icon, name, strings.Repeat(" ", pad))
		line := style.Render(label) + m.theme.Elapsed.Render(formatSeconds(task.Elapsed(now)))
		if task.Running {
			line += " " + m.theme.Running.Render("●")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(m.tasks) {
		b.WriteString(m.theme.Dim.Render("  ↓ more"))
		b.WriteString("\n")
	}
	return b.String()
}
