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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc"
)

func TestEtaReduceCollapsesWrapper(t *testing.T) {
	// lambda x. (force sha2_256) x  ==eta==>  force sha2_256
	f := &uplc.Force{Body: &uplc.BuiltinRef{Name: "sha2_256"}}
	term := &uplc.LamAbs{
		Name: "x",
		Body: &uplc.Apply{Fun: f, Arg: &uplc.Var{Name: "x", Index: 1}},
	}

	got := EtaReduce(term)

	require.True(t, uplc.TermEqual(f, got))
}

func TestEtaReduceLeavesCapturingLambdaAlone(t *testing.T) {
	// lambda x. (addInteger x) x -- x also occurs in the function part, not eligible
	inner := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Var{Name: "x", Index: 1}}
	term := &uplc.LamAbs{
		Name: "x",
		Body: &uplc.Apply{Fun: inner, Arg: &uplc.Var{Name: "x", Index: 1}},
	}

	got := EtaReduce(term)

	require.True(t, uplc.TermEqual(term, got))
}

func TestEtaReduceIsIdempotent(t *testing.T) {
	f := &uplc.BuiltinRef{Name: "addInteger"}
	term := &uplc.LamAbs{Name: "x", Body: &uplc.Apply{Fun: f, Arg: &uplc.Var{Name: "x", Index: 1}}}

	once := EtaReduce(term)
	twice := EtaReduce(once)

	require.True(t, uplc.TermEqual(once, twice))
}

func TestIsPureRejectsUnsaturatedBuiltin(t *testing.T) {
	// addInteger applied to only one of its two arguments is not pure: it
	// is a PartialBuiltinValue, not a value-producing leaf.
	term := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Var{Name: "x", Index: 1}}

	require.False(t, isPure(term))
}

func TestIsPureAcceptsSaturatedPureBuiltin(t *testing.T) {
	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Var{Name: "x", Index: 2}},
		Arg: &uplc.Var{Name: "y", Index: 1},
	}

	require.True(t, isPure(term))
}

func TestIsPureRejectsErrorTerm(t *testing.T) {
	require.False(t, isPure(&uplc.ErrorTerm{}))
}

func TestIsPureRejectsSaturatedPartialBuiltins(t *testing.T) {
	// divideInteger can fail (division by zero) despite being saturated;
	// trace has the side effect of appending to the execution log even
	// though its return value may go unused. Neither may be dropped or
	// duplicated by a rewrite that claims to preserve observations.
	divide := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "divideInteger"}, Arg: &uplc.Var{Name: "x", Index: 2}},
		Arg: &uplc.Var{Name: "y", Index: 1},
	}
	require.False(t, isPure(divide))

	trace := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "trace"}, Arg: &uplc.Var{Name: "msg", Index: 2}},
		Arg: &uplc.Var{Name: "x", Index: 1},
	}
	require.False(t, isPure(trace))
}
