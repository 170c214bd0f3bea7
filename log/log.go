// Copyright 2017 The go-probeum Authors
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

// Package log is the operator-facing diagnostic logger for the toolchain
// surrounding the UPLC engine: envelope decode failures, pipeline wiring,
// cost-model table loads. It is never consulted by the CEK machine and
// never touches the deterministic trace log the `trace` builtin writes to
// (see package trace) — mixing the two would make evaluation output depend
// on whether a developer happened to have logging turned up.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
)

// Level is a log verbosity level, ordered most to least severe.
type Level int

const (
	LevelCrit Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelCrit:
		return "CRIT"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Level]*color.Color{
	LevelCrit:  color.New(color.FgHiRed, color.Bold),
	LevelError: color.New(color.FgRed),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
	LevelTrace: color.New(color.FgWhite),
}

// Logger writes leveled, structured records to an output stream, in color
// when that stream is a terminal and in plain logfmt otherwise.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	isTerm bool
}

// Root is the process-wide default logger, writing to stderr at Info level.
var Root = New(colorable.NewColorableStderr(), LevelInfo, isTerminal(os.Stderr))

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// New constructs a Logger writing to w at the given verbosity.
func New(w io.Writer, level Level, colorized bool) *Logger {
	return &Logger{out: w, level: level, isTerm: colorized}
}

// SetLevel adjusts the minimum level this logger emits.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, msg string, ctx []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000")
	var line string
	if l.isTerm {
		c := levelColor[level]
		line = fmt.Sprintf("%s %s %s", ts, c.Sprint(level.String()), msg)
	} else {
		line = fmt.Sprintf("t=%s lvl=%s msg=%q", ts, level.String(), msg)
	}
	for i := 0; i+1 < len(ctx); i += 2 {
		line += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	if level <= LevelError {
		// Annotate crit/error records with the immediate call site, skipping
		// the log package's own frames.
		if call := stack.Caller(2); call != nil {
			line += fmt.Sprintf(" caller=%+v", call)
		}
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Crit(msg string, ctx ...interface{})  { l.log(LevelCrit, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.log(LevelWarn, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.log(LevelInfo, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx) }
func (l *Logger) Trace(msg string, ctx ...interface{}) { l.log(LevelTrace, msg, ctx) }

func Crit(msg string, ctx ...interface{})  { Root.Crit(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { Root.Error(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { Root.Warn(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { Root.Info(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { Root.Debug(msg, ctx...) }
func Trace(msg string, ctx ...interface{}) { Root.Trace(msg, ctx...) }
