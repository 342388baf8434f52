// Copyright 2025 go-highway Authors
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

package hwy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// nopLogger is initialized before any init() runs, so dispatch detection can
// log through Logger() regardless of file order.
var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. Nil means nopLogger.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger for hwy and the packages built on it.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Setting a logger immediately reports the selected dispatch level at debug
// level, since detection runs before any caller can install a logger.
//
// Log levels used:
//   - [slog.LevelDebug]: dispatch selection, backend conversions
//   - [slog.LevelWarn]: fallbacks a caller may want to know about
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
	logDispatch()
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
