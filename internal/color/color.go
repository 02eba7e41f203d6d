// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI control codes for terminal text formatting.
// Output honors the NO_COLOR and FORCE_COLOR environment variables.
package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Bright foreground text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// ControlString generates the escape sequence for the given codes.
func ControlString(codes ...Code) string {
	sb := strings.Builder{}
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Enabled reports whether color output should be produced for f.
// FORCE_COLOR wins over NO_COLOR; otherwise color requires a terminal.
func Enabled(f *os.File) bool {
	if _, ok := os.LookupEnv(ForceColor); ok {
		return true
	}

	if _, ok := os.LookupEnv(NoColor); ok {
		return false
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}
