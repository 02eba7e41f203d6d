// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/surechen/rim/cmd/demo"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		demo.DemoCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "rim",
	Description: `rim is a progress-reporting toolkit for long-running operations such as
downloads and extractions. Operation code talks to a small Progress handle;
renderers (a plain terminal bar or a richer TUI) consume its reports without
the operation ever knowing how they are displayed.`,
	Usage:     "rim demo",
	Version:   Version,
	Copyright: "Copyright (c) surechen 2025. All rights reserved.",
	Authors: []any{
		"surechen",
	},
	EnableShellCompletion: true,
}
