// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"math"

	"github.com/surechen/rim/internal/progress"
)

var (
	// ErrAlreadyStarted is returned when Start is called on a renderer that
	// is already displaying an indicator.
	ErrAlreadyStarted = errors.New("renderer already started")
	// ErrZeroTotal is returned when Start is called with a total of zero.
	ErrZeroTotal = errors.New("renderer total must be greater than zero")
)

// Renderer turns position and message reports into a visible progress
// indicator. Start may fail; Update and Stop cannot.
type Renderer interface {
	// Start initializes a visual indicator for a total amount of work and a
	// display style.
	Start(total uint64, label string, style progress.Style) error
	// Update advances the visual indicator to the given position.
	Update(pos uint64)
	// Stop finalizes the indicator and displays a terminal message.
	Stop(finalMessage string)
}

// Messenger is implemented by renderers that can display intermediate
// status messages alongside the indicator.
type Messenger interface {
	Message(msg string)
}

// FuncRenderer adapts three plain functions to the Renderer interface, for
// backends with no per-instance state of their own. Nil fields are no-ops,
// except StartFunc, which defaults to success.
type FuncRenderer struct {
	StartFunc  func(total uint64, label string, style progress.Style) error
	UpdateFunc func(pos uint64)
	StopFunc   func(finalMessage string)
}

// Start implements Renderer.Start.
func (f *FuncRenderer) Start(total uint64, label string, style progress.Style) error {
	if f.StartFunc == nil {
		return nil
	}

	return f.StartFunc(total, label, style)
}

// Update implements Renderer.Update.
func (f *FuncRenderer) Update(pos uint64) {
	if f.UpdateFunc != nil {
		f.UpdateFunc(pos)
	}
}

// Stop implements Renderer.Stop.
func (f *FuncRenderer) Stop(finalMessage string) {
	if f.StopFunc != nil {
		f.StopFunc(finalMessage)
	}
}

// NullRenderer is a no-op Renderer for headless embedding.
type NullRenderer struct{}

// Start implements Renderer.Start by doing nothing.
func (NullRenderer) Start(uint64, string, progress.Style) error { return nil }

// Update implements Renderer.Update by doing nothing.
func (NullRenderer) Update(uint64) {}

// Stop implements Renderer.Stop by doing nothing.
func (NullRenderer) Stop(string) {}

// Callbacks returns the two core sink functions closed over r. The position
// sink scales the tracked position, which is always in [0, MaxPosition],
// onto [0, total] and rounds to the nearest integer. Messages reach r only
// when it also implements Messenger.
func Callbacks(r Renderer, total uint64) (progress.MsgFunc, progress.PosFunc) {
	msgFn := func(msg string) error {
		if m, ok := r.(Messenger); ok {
			m.Message(msg)
		}

		return nil
	}

	posFn := func(pos float64) error {
		scaled := pos / progress.MaxPosition * float64(total)
		r.Update(uint64(math.Round(scaled)))

		return nil
	}

	return msgFn, posFn
}

// Sink bundles Callbacks into a progress.Sink for use with Fanout.
func Sink(r Renderer, total uint64) progress.Sink {
	msgFn, posFn := Callbacks(r, total)

	return progress.Sink{Msg: msgFn, Pos: posFn}
}
