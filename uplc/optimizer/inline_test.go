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

package optimizer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc"
)

func TestInlineEliminatesUnusedPureArgument(t *testing.T) {
	// (lambda x. 7) slow_computation -- x unused, argument pure: dropped
	// unstepped regardless of what it contains.
	slow := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "multiplyInteger"}, Arg: &uplc.Var{Name: "a", Index: 9}},
		Arg: &uplc.Var{Name: "b", Index: 9},
	}
	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: &uplc.Const{Value: uplc.NewInteger(big.NewInt(7))}},
		Arg: slow,
	}

	got := Inline(term)

	want := &uplc.Const{Value: uplc.NewInteger(big.NewInt(7))}
	require.True(t, uplc.TermEqual(want, got))
}

func TestInlineCollapsesIdentityLambda(t *testing.T) {
	arg := &uplc.Const{Value: uplc.NewInteger(big.NewInt(42))}
	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: &uplc.Var{Name: "x", Index: 1}},
		Arg: arg,
	}

	got := Inline(term)

	require.True(t, uplc.TermEqual(arg, got))
}

func TestInlineSubstitutesSingleUseArgument(t *testing.T) {
	// (lambda x. headList x) y -- x is used once, so y is substituted for it.
	body := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "headList"}, Arg: &uplc.Var{Name: "x", Index: 1}}
	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: body},
		Arg: &uplc.Var{Name: "y", Index: 1},
	}

	got := Inline(term)

	want := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "headList"}, Arg: &uplc.Var{Name: "y", Index: 1}}
	require.True(t, uplc.TermEqual(want, got))
}

func TestInlineCollapsesForceDelay(t *testing.T) {
	inner := &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}
	term := &uplc.Force{Body: &uplc.Delay{Body: inner}}

	got := Inline(term)

	require.True(t, uplc.TermEqual(inner, got))
}

func TestInlineLeavesMultiUseLargeConstAlone(t *testing.T) {
	large := &uplc.Const{Value: uplc.ByteStringValue{B: make([]byte, 72)}}
	body := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "appendByteString"}, Arg: &uplc.Var{Name: "x", Index: 1}},
		Arg: &uplc.Var{Name: "x", Index: 1},
	}
	term := &uplc.Apply{Fun: &uplc.LamAbs{Name: "x", Body: body}, Arg: large}

	got := Inline(term)

	// Two occurrences and a >64-bit constant: not inlined, still an Apply.
	_, isApply := got.(*uplc.Apply)
	require.True(t, isApply)
}
