// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides a minimal progress-reporting abstraction for
// long-running operations such as downloads and extractions. It decouples
// the progress signal from how that signal is rendered: operations talk to
// a Progress handle, and the handle forwards updates to caller-supplied
// sink functions. Renderers (terminal bars, TUIs) live behind those sinks
// and are never referenced by this package.
package progress
