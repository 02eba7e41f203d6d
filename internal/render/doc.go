// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render defines the renderer adapter contract consumed by the
// progress core, together with a terminal progress-bar backend. A renderer
// is started with a total and a display style, advanced with integer
// positions, and stopped with a final message; Callbacks closes the core's
// two sink functions over any renderer so that operation code never touches
// a renderer handle directly.
package render
