// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"

	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/render"
)

// Operation is a long-running unit of work that reports through a
// progress handle. It should return promptly when its context is
// cancelled.
type Operation func(ctx context.Context, p progress.Progress) error

// Runner couples an operation with the TUI lifecycle. Run starts the
// indicator, hands the operation a progress handle whose sinks feed the
// renderer, and blocks until both the operation and the final frame are
// done. The operation never touches the renderer directly.
type Runner struct {
	renderer *Renderer
	label    string
	total    uint64
	style    progress.Style
	final    string
}

// NewRunner creates a runner displaying label over an indicator with the
// given total and style. final is shown when the operation succeeds.
func NewRunner(renderer *Renderer, label string, total uint64, style progress.Style, final string) *Runner {
	return &Runner{
		renderer: renderer,
		label:    label,
		total:    total,
		style:    style,
		final:    final,
	}
}

// Run executes op under the TUI and returns its error. The handle given
// to op has no length set; op may derive one via WithLength.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	if err := r.renderer.Start(r.total, r.label, r.style); err != nil {
		return err
	}

	sink := render.Sink(r.renderer, r.total)
	handle := progress.New(sink.Msg, sink.Pos)

	opDone := make(chan error, 1)

	go func() {
		opDone <- op(ctx, handle)
	}()

	var err error

	select {
	case err = <-opDone:
	case <-ctx.Done():
		// Let the operation observe the cancellation and return; reports
		// arriving after Stop are dropped by the renderer.
		err = <-opDone
		if err == nil {
			err = ctx.Err()
		}
	}

	if err != nil {
		r.renderer.Stop("")
		return err
	}

	r.renderer.Stop(r.final)

	return nil
}
