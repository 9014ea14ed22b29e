// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the command line tools,
// wrapping log/slog with colored level tags. The engine packages
// themselves never log; they are pure functions.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the current user-facing log level; the -v flag of the
// command line tools sets it. The default is Info, or Debug / Warn
// under the debug / release build tags.
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

var (
	setup sync.Once
	out   = termenv.NewOutput(os.Stderr)
)

// levelColors maps slog levels to ANSI foreground colors.
var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSIBlue,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// handler is a minimal slog handler printing a colored level tag
// followed by the message and any attributes.
type handler struct {
	w     io.Writer
	attrs []slog.Attr
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	tag := out.String(r.Level.String()).Foreground(levelColors[r.Level]).String()
	s := tag + " " + r.Message
	emit := func(a slog.Attr) bool {
		s += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		emit(a)
	}
	r.Attrs(emit)
	_, err := fmt.Fprintln(h.w, s)
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{w: h.w, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *handler) WithGroup(string) slog.Handler { return h }

// Init installs the colored handler as the slog default. It is safe
// to call more than once; only the first call takes effect.
func Init() {
	setup.Do(func() {
		slog.SetDefault(slog.New(&handler{w: os.Stderr}))
	})
}
