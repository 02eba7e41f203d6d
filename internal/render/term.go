// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/theme"
)

// interface guards
var (
	_ Renderer  = (*Term)(nil)
	_ Messenger = (*Term)(nil)
)

// Term renders progress as an in-place terminal bar. It is safe for use by
// multiple goroutines reporting through the same handle.
type Term struct {
	mu     sync.Mutex
	writer io.Writer
	theme  theme.Theme
	bar    *progressbar.ProgressBar
}

// NewTerm creates a terminal renderer writing to w with the given theme.
// A nil writer defaults to stderr, keeping stdout free for messages.
func NewTerm(w io.Writer, th theme.Theme) *Term {
	if w == nil {
		w = os.Stderr
	}

	return &Term{writer: w, theme: th}
}

// Start implements Renderer.Start.
func (t *Term) Start(total uint64, label string, style progress.Style) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		return ErrAlreadyStarted
	}

	if total == 0 {
		return ErrZeroTotal
	}

	opts := []progressbar.Option{
		progressbar.OptionSetWriter(t.writer),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(t.theme.Width),
		progressbar.OptionEnableColorCodes(t.theme.Color),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        t.theme.Saucer,
			SaucerHead:    t.theme.SaucerHead,
			SaucerPadding: t.theme.SaucerPadding,
			BarStart:      t.theme.BarStart,
			BarEnd:        t.theme.BarEnd,
		}),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(t.writer, "\n")
		}),
	}

	switch style {
	case progress.StyleBytes:
		opts = append(opts, progressbar.OptionShowBytes(true))
	default:
		opts = append(opts, progressbar.OptionShowCount())
	}

	t.bar = progressbar.NewOptions64(int64(total), opts...)

	return nil
}

// Update implements Renderer.Update. Updates before Start are dropped.
func (t *Term) Update(pos uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil {
		return
	}

	_ = t.bar.Set64(int64(pos))
}

// Stop implements Renderer.Stop. The bar is finished and the final message
// printed beneath it; stopping an unstarted renderer only prints.
func (t *Term) Stop(finalMessage string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}

	if finalMessage != "" {
		_, _ = fmt.Fprintln(t.writer, finalMessage)
	}
}

// Message implements Messenger. The bar is cleared first so the message
// does not interleave with the in-place redraw.
func (t *Term) Message(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar != nil {
		_ = t.bar.Clear()
	}

	_, _ = fmt.Fprintln(t.writer, msg)
}
