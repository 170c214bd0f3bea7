// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package trace is the deterministic, in-script log the `trace` builtin
// writes to. It is part of an evaluation's observable output, unlike
// package log (the host-side diagnostic logger) — entries here are produced
// by the program under evaluation, are replayed identically across re-runs
// of the same script, and are never charged against the execution budget.
package trace

// Logger collects trace messages in call order for one evaluation run. The
// zero value is ready to use.
type Logger struct {
	entries []string
}

// New returns an empty Logger.
func New() *Logger { return &Logger{} }

// Log appends msg to the trace log. Called only by the CEK machine's
// special-cased handling of the `trace` builtin — never by user code
// directly.
func (l *Logger) Log(msg string) {
	l.entries = append(l.entries, msg)
}

// Drain returns every logged message in call order and resets the logger,
// matching the teacher's drain-on-read log buffer idiom.
func (l *Logger) Drain() []string {
	out := l.entries
	l.entries = nil
	return out
}

// Entries returns every logged message in call order without clearing the
// logger.
func (l *Logger) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}
