// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/theme"
)

func testModel(t *testing.T, total uint64, style progress.Style) Model {
	t.Helper()

	th := theme.Default()
	th.Color = false

	return NewModel("downloading toolchain", total, style, th)
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)

	model, ok := updated.(Model)
	require.True(t, ok)

	return model
}

func TestModelView_InitialState(t *testing.T) {
	m := testModel(t, 10, progress.StyleLen)

	view := m.View()

	assert.Contains(t, view, "downloading toolchain")
	assert.Contains(t, view, "0/10")
}

func TestModelUpdate_Position(t *testing.T) {
	m := testModel(t, 10, progress.StyleLen)

	m = applyMsg(t, m, PositionMsg(7))

	assert.Contains(t, m.View(), "7/10")
}

func TestModelUpdate_Message(t *testing.T) {
	m := testModel(t, 10, progress.StyleLen)

	m = applyMsg(t, m, MessageMsg("resolving dependencies"))

	assert.Contains(t, m.View(), "resolving dependencies")
}

func TestModelUpdate_Done(t *testing.T) {
	m := testModel(t, 10, progress.StyleLen)

	updated, cmd := m.Update(DoneMsg{FinalMessage: "toolchain installed"})
	model, ok := updated.(Model)
	require.True(t, ok)
	require.NotNil(t, cmd)

	// DoneMsg quits the program.
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, model.View(), "toolchain installed")
}

func TestModelUpdate_DoneReplacesLastMessage(t *testing.T) {
	m := testModel(t, 4, progress.StyleLen)
	m = applyMsg(t, m, MessageMsg("half way"))
	m = applyMsg(t, m, DoneMsg{FinalMessage: "all done"})

	view := m.View()

	assert.Contains(t, view, "all done")
	assert.NotContains(t, view, "half way")
}

func TestModelUpdate_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "q", key: "q"},
		{name: "ctrl+c", key: "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, 10, progress.StyleLen)

			var msg tea.KeyMsg
			if tt.key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
			}

			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModelView_BytesStyle(t *testing.T) {
	m := testModel(t, 2048, progress.StyleBytes)

	m = applyMsg(t, m, PositionMsg(1024))

	view := m.View()
	assert.Contains(t, view, "1.0 KiB")
	assert.Contains(t, view, "2.0 KiB")
}

func TestModelUpdate_WindowSizeShrinksBar(t *testing.T) {
	m := testModel(t, 10, progress.StyleLen)

	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 24, Height: 10})

	assert.LessOrEqual(t, m.bar.Width, 24)
	assert.GreaterOrEqual(t, m.bar.Width, minBarWidth)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		in       uint64
		expected string
	}{
		{name: "bytes", in: 999, expected: "999 B"},
		{name: "kibibytes", in: 1536, expected: "1.5 KiB"},
		{name: "mebibytes", in: 5 * 1024 * 1024, expected: "5.0 MiB"},
		{name: "gibibytes", in: 3 * 1024 * 1024 * 1024, expected: "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytes(tt.in))
		})
	}
}
