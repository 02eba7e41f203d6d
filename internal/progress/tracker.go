// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"math"
	"sync"
)

// MaxPosition is the ceiling for any tracked position. It is a clamp, not a
// hard domain unit: callers may pass arbitrary deltas and lengths, the
// tracker simply never reports a value above it.
const MaxPosition = 100.0

// Tracker holds the shared position of an operation. It is safe for use by
// multiple goroutines; all mutation goes through Add, which serializes
// read-modify-write cycles behind a single lock.
type Tracker struct {
	mu  sync.Mutex
	pos float64
}

// NewTracker creates a tracker starting at the given position.
// Callers are expected to pass 0; the value is not validated.
func NewTracker(initial float64) *Tracker {
	return &Tracker{pos: initial}
}

// Load returns the current position, reflecting the latest completed Add.
func (t *Tracker) Load() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.pos
}

// Add increments the position by delta, clamping the result at MaxPosition.
// The position never decreases.
func (t *Tracker) Add(delta float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pos = math.Min(t.pos+delta, MaxPosition)
}
