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

func TestFreeVarsOfPlainVarIsItsOwnDepth(t *testing.T) {
	fv := FreeVars(&Var{Index: 2})

	_, ok := fv[1]
	require.True(t, ok)
}

func TestFreeVarsOfLamAbsShiftsDownByOne(t *testing.T) {
	// lambda. (var at depth 1, i.e. index 2) -- escapes the lambda as depth 0.
	term := &LamAbs{Body: &Var{Index: 2}}

	fv := FreeVars(term)

	_, ok := fv[0]
	require.True(t, ok)
}

func TestIsFreeAtDepth0(t *testing.T) {
	require.True(t, IsFreeAtDepth0(&Var{Index: 1}))
	require.False(t, IsFreeAtDepth0(&Var{Index: 2}))
}

func TestTermEqualStructural(t *testing.T) {
	a := &Apply{Fun: &BuiltinRef{Name: "addInteger"}, Arg: &Var{Index: 1}}
	b := &Apply{Fun: &BuiltinRef{Name: "addInteger"}, Arg: &Var{Index: 1}}
	c := &Apply{Fun: &BuiltinRef{Name: "subtractInteger"}, Arg: &Var{Index: 1}}

	require.True(t, TermEqual(a, b))
	require.False(t, TermEqual(a, c))
}

func TestCountOccurrencesCountsDepth0UsesOnly(t *testing.T) {
	// x applied to (lambda. x) -- the inner x refers to the shadowing lambda
	// and must not count toward the outer binder's occurrences.
	body := &Apply{
		Fun: &Var{Index: 1},
		Arg: &LamAbs{Body: &Var{Index: 1}},
	}

	require.Equal(t, 1, CountOccurrences(body, 0))
}

func TestSubstituteShiftsReplacementFreeVarsUnderNestedBinder(t *testing.T) {
	// lambda y. x -- substituting x (depth 1 from the LamAbs's own root)
	// with a free variable must shift that variable's index by one to
	// account for the binder it is moved beneath.
	body := &LamAbs{Body: &Var{Index: 2}}
	replacement := &Var{Index: 1}

	got := Substitute(body, replacement)

	lam, ok := got.(*LamAbs)
	require.True(t, ok)
	v, ok := lam.Body.(*Var)
	require.True(t, ok)
	require.Equal(t, 2, v.Index)
}

func TestSubstituteAtBoundDepthInsertsReplacement(t *testing.T) {
	got := substAt(&Var{Index: 1}, 0, &Const{Value: NewInteger(big.NewInt(9))})

	c, ok := got.(*Const)
	require.True(t, ok)
	require.Equal(t, big.NewInt(9), c.Value.(IntegerValue).V)
}
