// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlString(t *testing.T) {
	tests := []struct {
		name     string
		codes    []Code
		expected string
	}{
		{
			name:     "single code",
			codes:    []Code{FgRed},
			expected: "\033[31m",
		},
		{
			name:     "multiple codes",
			codes:    []Code{Bold, FgGreen},
			expected: "\033[1;32m",
		},
		{
			name:     "reset",
			codes:    []Code{Reset},
			expected: "\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ControlString(tt.codes...))
		})
	}
}

func TestEnabled_ForceWinsOverNoColor(t *testing.T) {
	t.Setenv(NoColor, "1")
	t.Setenv(ForceColor, "1")

	assert.True(t, Enabled(nil))
}

func TestEnabled_NilFileWithoutForce(t *testing.T) {
	t.Setenv(NoColor, "1")

	assert.False(t, Enabled(nil))
}
