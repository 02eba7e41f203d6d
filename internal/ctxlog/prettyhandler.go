// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"

	"github.com/surechen/rim/internal/color"
)

var (
	// ErrMarshalAttrs is returned when log attributes cannot be rendered.
	ErrMarshalAttrs = errors.New("error when marshaling log attributes")
	// ErrWrite is returned when the record cannot be written to the output.
	ErrWrite = errors.New("error when writing log record")
)

// TimeFormat is the format used for timestamps in log records.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that renders records as colorized,
// human-readable lines with attributes shown as highlighted JSON.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	writer io.Writer
	mu     *sync.Mutex
	colour bool
	attrs  []slog.Attr
	groups []string
	json   *colorjson.Formatter
}

// NewPretty creates a PrettyHandler writing to w. Color is enabled when w
// is a terminal, unless overridden via the NO_COLOR/FORCE_COLOR variables.
func NewPretty(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	colour := false
	if f, ok := w.(*os.File); ok {
		colour = color.Enabled(f)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2
	formatter.DisabledColor = !colour

	return &PrettyHandler{
		opts:   *opts,
		writer: w,
		mu:     &sync.Mutex{},
		colour: colour,
		json:   formatter,
	}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, 4)

	if !r.Time.IsZero() {
		parts = append(parts, h.maybeColor(r.Time.Format(TimeFormat), color.Faint))
	}

	parts = append(parts,
		h.maybeColor(r.Level.String()+":", levelColor(r.Level)),
		h.maybeColor(r.Message, color.FgHiWhite),
	)

	attrs := h.collectAttrs(r)
	if len(attrs) > 0 {
		rendered, err := h.json.Marshal(attrs)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMarshalAttrs, err.Error())
		}

		parts = append(parts, string(rendered))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := fmt.Fprintln(h.writer, strings.Join(parts, " ")); err != nil {
		return fmt.Errorf("%w: %s", ErrWrite, err.Error())
	}

	return nil
}

// collectAttrs flattens the handler's accumulated attributes and the
// record's own attributes into one map, prefixing keys with the open
// group path.
func (h *PrettyHandler) collectAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())

	keyPrefix := ""
	if len(h.groups) > 0 {
		keyPrefix = strings.Join(h.groups, ".") + "."
	}

	for _, a := range h.attrs {
		flattenAttr(attrs, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		flattenAttr(attrs, keyPrefix, a)
		return true
	})

	return attrs
}

func flattenAttr(dst map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			flattenAttr(dst, prefix+a.Key+".", ga)
		}

		return
	}

	if a.Key == "" {
		return
	}

	dst[prefix+a.Key] = jsonValue(v)
}

// jsonValue lowers a slog value to the types the JSON highlighter
// understands.
func jsonValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindBool:
		return v.Bool()
	case slog.KindInt64:
		return float64(v.Int64())
	case slog.KindUint64:
		return float64(v.Uint64())
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindString, slog.KindDuration, slog.KindTime:
		return v.String()
	default:
		switch val := v.Any().(type) {
		case error:
			return val.Error()
		case fmt.Stringer:
			return val.String()
		case nil, string, bool, float64:
			return val
		default:
			return fmt.Sprint(val)
		}
	}
}

func (h *PrettyHandler) maybeColor(s string, codes ...color.Code) string {
	if !h.colour {
		return s
	}

	return color.ControlString(codes...) + s + color.ControlString(color.Reset)
}

func levelColor(level slog.Level) color.Code {
	switch {
	case level <= slog.LevelDebug:
		return color.FgWhite
	case level <= slog.LevelInfo:
		return color.FgCyan
	case level < slog.LevelError:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// interface guard
var _ slog.Handler = (*PrettyHandler)(nil)
