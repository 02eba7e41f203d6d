// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"os"
)

// MsgFunc receives a textual status message from an operation.
// Implementations are invoked synchronously; any error is propagated
// verbatim to the operation.
type MsgFunc func(msg string) error

// PosFunc receives the new total position in [0, MaxPosition] after each
// increment. Implementations are invoked synchronously; any error is
// propagated verbatim to the operation.
type PosFunc func(pos float64) error

// Progress is the sole touchpoint between operation logic and a renderer.
// It wraps a shared Tracker, a unit length, and the two sink functions
// supplied at construction time.
//
// Progress has value semantics: copies share the same underlying tracker,
// so handles may be passed to concurrent producers and their increments
// converge on one position. The sinks must remain usable for the lifetime
// of every copy of the handle.
type Progress struct {
	tracker *Tracker
	length  float64
	msgFn   MsgFunc
	posFn   PosFunc
}

// New builds a handle with position 0 and length 0. Both sinks must be
// non-nil; use DiscardMsg or DiscardPos for a side that is not needed.
func New(msgFn MsgFunc, posFn PosFunc) Progress {
	return Progress{
		tracker: NewTracker(0),
		msgFn:   msgFn,
		posFn:   posFn,
	}
}

// WithLength returns a handle with the unit length set. The position is
// not reset and the returned handle shares the receiver's tracker.
func (p Progress) WithLength(length float64) Progress {
	p.length = length
	return p
}

// Length returns the unit length set via WithLength.
func (p Progress) Length() float64 {
	return p.length
}

// Position returns the current tracked position.
func (p Progress) Position() float64 {
	return p.tracker.Load()
}

// ShowMsg forwards msg to the message sink and returns whatever the sink
// reports. The handle adds no wrapping or classification.
func (p Progress) ShowMsg(msg string) error {
	return p.msgFn(msg)
}

// IncBy advances the tracker by delta, then reports the new total position
// to the position sink. The tracker is updated before the sink runs, so a
// failing sink does not lose the increment.
func (p Progress) IncBy(delta float64) error {
	p.tracker.Add(delta)
	return p.posFn(p.tracker.Load())
}

// CompleteUnit marks the current unit of work fully complete, advancing the
// tracker by the whole length. Equivalent to IncBy(Length()).
func (p Progress) CompleteUnit() error {
	return p.IncBy(p.length)
}

// Sinks that accept and ignore everything, for handles that only need one
// side of the reporting boundary.
var (
	// DiscardMsg ignores messages.
	DiscardMsg MsgFunc = func(string) error { return nil }
	// DiscardPos ignores position reports.
	DiscardPos PosFunc = func(float64) error { return nil }
)

// stdout is swapped out in tests.
var stdout io.Writer = os.Stdout

// SendAndPrint writes msg to standard output unconditionally and, when a
// handle is supplied, additionally forwards it through ShowMsg exactly once.
// It unifies call sites that always print but only sometimes have a richer
// UI to report to.
func SendAndPrint(msg string, p *Progress) error {
	fmt.Fprintln(stdout, msg)

	if p != nil {
		return p.ShowMsg(msg)
	}

	return nil
}
