// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/render"
	"github.com/surechen/rim/internal/theme"
)

// interface guards
var (
	_ render.Renderer  = (*Renderer)(nil)
	_ render.Messenger = (*Renderer)(nil)
)

// Renderer drives a bubbletea program displaying a single progress
// indicator. It implements render.Renderer and render.Messenger; position
// and message reports are forwarded into the program as messages, so they
// may arrive from any goroutine. Stop blocks until the program has shut
// down and its final frame is on screen.
type Renderer struct {
	theme  theme.Theme
	output io.Writer
	opts   []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan error
}

// NewRenderer creates a TUI renderer with the given theme. A nil output
// defaults to stdout. Additional program options are passed through to
// bubbletea.
func NewRenderer(th theme.Theme, output io.Writer, opts ...tea.ProgramOption) *Renderer {
	if output == nil {
		output = os.Stdout
	}

	return &Renderer{theme: th, output: output, opts: opts}
}

// Start implements render.Renderer.Start. It launches the bubbletea
// program on its own goroutine.
func (r *Renderer) Start(total uint64, label string, style progress.Style) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program != nil {
		return render.ErrAlreadyStarted
	}

	if total == 0 {
		return render.ErrZeroTotal
	}

	model := NewModel(label, total, style, r.theme)
	opts := append([]tea.ProgramOption{tea.WithOutput(r.output)}, r.opts...)
	program := tea.NewProgram(model, opts...)
	done := make(chan error, 1)

	go func() {
		_, err := program.Run()
		done <- err
	}()

	r.program = program
	r.done = done

	return nil
}

// Update implements render.Renderer.Update. Updates before Start or after
// Stop are dropped.
func (r *Renderer) Update(pos uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program == nil {
		return
	}

	r.program.Send(PositionMsg(pos))
}

// Message implements render.Messenger.
func (r *Renderer) Message(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program == nil {
		return
	}

	r.program.Send(MessageMsg(msg))
}

// Stop implements render.Renderer.Stop. If the renderer was never started
// the final message is printed directly.
func (r *Renderer) Stop(finalMessage string) {
	r.mu.Lock()
	program, done := r.program, r.done
	r.program, r.done = nil, nil
	r.mu.Unlock()

	if program == nil {
		if finalMessage != "" {
			_, _ = fmt.Fprintln(r.output, finalMessage)
		}

		return
	}

	program.Send(DoneMsg{FinalMessage: finalMessage})

	// The program quits on DoneMsg; wait for its final frame.
	<-done
}
