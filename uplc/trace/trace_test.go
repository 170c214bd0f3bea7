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

package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLogAppendsInCallOrder(t *testing.T) {
	l := New()
	l.Log("first")
	l.Log("second")

	require.Equal(t, []string{"first", "second"}, l.Entries())
}

func TestLoggerDrainResetsBuffer(t *testing.T) {
	l := New()
	l.Log("only")

	drained := l.Drain()
	require.Equal(t, []string{"only"}, drained)
	require.Empty(t, l.Entries())
}

func TestZeroValueLoggerIsReadyToUse(t *testing.T) {
	var l Logger
	l.Log("works")

	require.Equal(t, []string{"works"}, l.Entries())
}
