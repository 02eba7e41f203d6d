// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo implements the demo subcommand, which drives a simulated
// download and extraction through the progress handle so the renderers can
// be exercised without real work.
package demo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/surechen/rim/internal/color"
	"github.com/surechen/rim/internal/ctxlog"
	"github.com/surechen/rim/internal/progress"
	"github.com/surechen/rim/internal/render"
	"github.com/surechen/rim/internal/theme"
	"github.com/surechen/rim/internal/tui"
)

const (
	rendererFlag = "renderer"
	themeFlag    = "theme"
	stepsFlag    = "steps"
	intervalFlag = "interval"
	noColorFlag  = "no-color"

	downloadTotalBytes = 32 * 1024 * 1024
)

// ErrUnknownRenderer is returned when the renderer flag names no backend.
var ErrUnknownRenderer = errors.New("unknown renderer")

// DemoCmd runs a simulated download and extraction with progress reporting.
var DemoCmd = &cli.Command{
	Name:        "demo",
	Description: "Run a simulated download and extraction to exercise the progress renderers.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        rendererFlag,
			Aliases:     []string{"r"},
			Usage:       "Renderer backend: auto, term, tui, or plain",
			Value:       "auto",
			DefaultText: "auto",
		},
		&cli.StringFlag{
			Name:      themeFlag,
			Usage:     "Path to a YAML theme file",
			TakesFile: true,
		},
		&cli.IntFlag{
			Name:        stepsFlag,
			Usage:       "Number of steps per phase",
			Value:       20,
			DefaultText: "20",
		},
		&cli.DurationFlag{
			Name:        intervalFlag,
			Usage:       "Delay between steps",
			Value:       100 * time.Millisecond,
			DefaultText: "100ms",
		},
		&cli.BoolFlag{
			Name:  noColorFlag,
			Usage: "Disable color output",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	th := theme.Default()

	if path := cmd.String(themeFlag); path != "" {
		loaded, err := theme.Load(path)
		if err != nil {
			return err
		}

		th = loaded
	}

	if cmd.Bool(noColorFlag) {
		th.Color = false
	} else {
		th.Color = th.Color && color.Enabled(os.Stdout)
	}

	mode := cmd.String(rendererFlag)

	renderer, err := selectRenderer(mode, th)
	if err != nil {
		return err
	}

	steps := int(cmd.Int(stepsFlag))
	if steps < 1 {
		steps = 1
	}

	interval := cmd.Duration(intervalFlag)

	ctxlog.Debug(ctx, "demo", "renderer", mode, "steps", steps, "interval", interval)

	announce := announcer(renderer)

	if err := runPhase(ctx, phase{
		renderer: renderer,
		announce: announce,
		label:    "downloading rim-toolchain.tar.xz",
		final:    "download complete",
		total:    downloadTotalBytes,
		style:    progress.StyleBytes,
		steps:    steps,
		interval: interval,
	}); err != nil {
		return err
	}

	return runPhase(ctx, phase{
		renderer: renderer,
		announce: announce,
		label:    "extracting rim-toolchain.tar.xz",
		final:    "extraction complete",
		total:    uint64(steps),
		style:    progress.StyleLen,
		steps:    steps,
		interval: interval,
	})
}

// selectRenderer picks a backend for the requested mode. auto selects the
// TUI on an interactive terminal and falls back to plain output otherwise.
func selectRenderer(mode string, th theme.Theme) (render.Renderer, error) {
	switch mode {
	case "term":
		return render.NewTerm(os.Stderr, th), nil
	case "tui":
		return tui.NewRenderer(th, os.Stdout), nil
	case "plain":
		return render.NullRenderer{}, nil
	case "auto", "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return tui.NewRenderer(th, os.Stdout), nil
		}

		return render.NullRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRenderer, mode)
	}
}

// announcer returns the status-message strategy for a backend. Renderers
// with their own display receive messages through the handle; the plain
// backend prints them, via SendAndPrint, since it renders nothing itself.
func announcer(r render.Renderer) func(msg string, p *progress.Progress) error {
	if _, ok := r.(render.NullRenderer); ok {
		return progress.SendAndPrint
	}

	return func(msg string, p *progress.Progress) error {
		return p.ShowMsg(msg)
	}
}

type phase struct {
	renderer render.Renderer
	announce func(msg string, p *progress.Progress) error
	label    string
	final    string
	total    uint64
	style    progress.Style
	steps    int
	interval time.Duration
}

func runPhase(ctx context.Context, ph phase) error {
	if err := ph.renderer.Start(ph.total, ph.label, ph.style); err != nil {
		return err
	}

	logSink := progress.Sink{
		Msg: func(msg string) error {
			ctxlog.Debug(ctx, "progress message", "msg", msg)
			return nil
		},
		Pos: func(pos float64) error {
			ctxlog.Debug(ctx, "progress position", "pos", pos)
			return nil
		},
	}

	sink := progress.Fanout(render.Sink(ph.renderer, ph.total), logSink)
	p := progress.New(sink.Msg, sink.Pos).WithLength(progress.MaxPosition / float64(ph.steps))

	if err := ph.announce(ph.label, &p); err != nil {
		return err
	}

	for i := range ph.steps {
		select {
		case <-ctx.Done():
			ph.renderer.Stop("cancelled")
			return ctx.Err()
		case <-time.After(ph.interval):
		}

		if i == ph.steps/2 {
			if err := ph.announce("halfway there", &p); err != nil {
				return err
			}
		}

		if err := p.CompleteUnit(); err != nil {
			return err
		}
	}

	ph.renderer.Stop(ph.final)

	return nil
}
