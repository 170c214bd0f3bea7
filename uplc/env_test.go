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

package uplc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvLookupResolvesByDeBruijnIndex(t *testing.T) {
	var e *Env
	e = e.Extend("x", NewInteger(big.NewInt(1)))
	e = e.Extend("y", NewInteger(big.NewInt(2)))

	v1, ok := e.Lookup(1)
	require.True(t, ok)
	require.True(t, ValuesEqual(NewInteger(big.NewInt(2)), v1))

	v2, ok := e.Lookup(2)
	require.True(t, ok)
	require.True(t, ValuesEqual(NewInteger(big.NewInt(1)), v2))
}

func TestEnvLookupOutOfRangeFails(t *testing.T) {
	var e *Env
	e = e.Extend("x", NewInteger(big.NewInt(1)))

	_, ok := e.Lookup(2)

	require.False(t, ok)
}

func TestEnvExtendLeavesParentUnchanged(t *testing.T) {
	var base *Env
	base = base.Extend("x", NewInteger(big.NewInt(1)))
	extended := base.Extend("y", NewInteger(big.NewInt(2)))

	v, ok := base.Lookup(1)
	require.True(t, ok)
	require.True(t, ValuesEqual(NewInteger(big.NewInt(1)), v))

	v, ok = extended.Lookup(1)
	require.True(t, ok)
	require.True(t, ValuesEqual(NewInteger(big.NewInt(2)), v))
}
