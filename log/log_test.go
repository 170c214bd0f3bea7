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

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerRespectsLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn, false)

	l.Info("should not appear")
	require.Empty(t, buf.String())

	l.Warn("should appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestLoggerPlainFormatIncludesLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, false)

	l.Debug("hello world", "key", "value")

	out := buf.String()
	require.Contains(t, out, "lvl=DEBUG")
	require.Contains(t, out, `msg="hello world"`)
	require.Contains(t, out, "key=value")
}

func TestLoggerErrorAnnotatesCallerSite(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError, false)

	l.Error("boom")

	require.Contains(t, buf.String(), "caller=")
}

func TestSetLevelAdjustsThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError, false)

	l.Info("hidden")
	require.Empty(t, buf.String())

	l.SetLevel(LevelInfo)
	l.Info("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestLevelStringAllValues(t *testing.T) {
	require.Equal(t, "CRIT", LevelCrit.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "TRACE", LevelTrace.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}
