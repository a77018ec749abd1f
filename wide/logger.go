// Copyright 2025 go-wide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wide

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	if envBool("WIDE_DEBUG") {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	loggerPtr.Store(l)
}

// SetLogger configures the logger for wide and its contrib packages.
// By default nothing is logged; setting WIDE_DEBUG=1 in the environment
// starts with a debug-level stderr logger instead.
//
// The vector operations themselves never log. Log levels used:
//   - [slog.LevelDebug]: worker pool lifecycle, parallel chunking decisions
//   - [slog.LevelWarn]: ignored malformed environment settings
//
// Pass nil to restore the silent default. SetLogger is safe for
// concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Contrib packages call this to share
// one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
