// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	pbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/theme"
)

const minBarWidth = 10

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// PositionMsg carries a new absolute position for the indicator.
type PositionMsg uint64

// MessageMsg carries a status message to display under the bar.
type MessageMsg string

// DoneMsg finalizes the indicator with a terminal message.
type DoneMsg struct {
	FinalMessage string
}

// Model is the bubbletea model for a single progress indicator.
type Model struct {
	label string
	total uint64
	style progress.Style

	bar     pbar.Model
	spin    spinner.Model
	pos     uint64
	lastMsg string
	final   string
	done    bool
	width   int
}

// NewModel creates a model for an operation with the given total and
// display style.
func NewModel(label string, total uint64, style progress.Style, th theme.Theme) Model {
	bar := pbar.New(pbar.WithGradient(th.GradientStart, th.GradientEnd))
	bar.Width = th.Width

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)

	return Model{
		label: label,
		total: total,
		style: style,
		bar:   bar,
		spin:  spin,
	}
}

// Init implements bubbletea.Model.Init.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements bubbletea.Model.Update.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - lipgloss.Width(m.counter()) - 4; w < m.bar.Width {
			m.bar.Width = max(w, minBarWidth)
		}

		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case PositionMsg:
		m.pos = uint64(msg)
		return m, nil

	case MessageMsg:
		m.lastMsg = string(msg)
		return m, nil

	case DoneMsg:
		m.done = true
		m.final = msg.FinalMessage

		return m, tea.Quit
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m Model) View() string {
	var b strings.Builder

	if m.done {
		b.WriteString(doneStyle.Render("✓") + " " + labelStyle.Render(m.label) + "\n")
	} else {
		b.WriteString(m.spin.View() + labelStyle.Render(m.label) + "\n")
	}

	b.WriteString(m.bar.ViewAs(m.percent()) + " " + m.counter() + "\n")

	switch {
	case m.done && m.final != "":
		b.WriteString(doneStyle.Render(m.final) + "\n")
	case m.lastMsg != "":
		b.WriteString(messageStyle.Render(m.lastMsg) + "\n")
	}

	return b.String()
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.pos) / float64(m.total)
}

func (m Model) counter() string {
	if m.style == progress.StyleBytes {
		return fmt.Sprintf("%s/%s", formatBytes(m.pos), formatBytes(m.total))
	}

	return fmt.Sprintf("%d/%d", m.pos, m.total)
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n uint64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
