// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Style selects how a renderer labels the progress counter. It carries no
// state and is never consulted by the handle itself; other modules pick a
// value and hand it to the renderer at start time.
type Style int

const (
	// StyleLen displays the progress as position / length. This is the
	// default.
	StyleLen Style = iota
	// StyleBytes displays the progress as bytes transferred / total bytes.
	StyleBytes
)

// String implements the Stringer interface for Style.
func (s Style) String() string {
	switch s {
	case StyleLen:
		return "len"
	case StyleBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Template returns the counter template associated with the style.
func (s Style) Template() string {
	switch s {
	case StyleBytes:
		return "{bytes}/{total_bytes}"
	default:
		return "{pos}/{len}"
	}
}
