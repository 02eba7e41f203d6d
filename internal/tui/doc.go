// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides a richer terminal renderer for progress reporting,
// built on bubbletea. It shows the operation label, a spinner while work is
// in flight, a gradient progress bar bound to the tracked position, and the
// most recent status message.
//
// The package exposes the same renderer contract as package render, so the
// application layer can switch between the plain terminal bar and the TUI
// without touching operation code.
package tui
