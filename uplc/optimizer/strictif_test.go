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

func lazyIfThenElse(cond, then, els uplc.Term) uplc.Term {
	app := uplc.NewApply(uplc.NewApply(uplc.NewApply(&uplc.BuiltinRef{Name: "ifThenElse"}, cond), &uplc.Delay{Body: then}), &uplc.Delay{Body: els})
	return &uplc.Force{Body: app}
}

func TestStrictIfCollapsesWhenBothBranchesPure(t *testing.T) {
	cond := &uplc.BuiltinRef{Name: "true"} // stand-in pure leaf
	then := &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}
	els := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Var{Name: "x", Index: 1}},
		Arg: &uplc.Var{Name: "y", Index: 1},
	}

	got := StrictIf(lazyIfThenElse(cond, then, els))

	want := applyIfThenElse(cond, then, els)
	require.True(t, uplc.TermEqual(want, got))
}

func TestStrictIfLeavesBothTrivialBranchesAlone(t *testing.T) {
	cond := &uplc.BuiltinRef{Name: "true"}
	then := &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}
	els := &uplc.Const{Value: uplc.NewInteger(big.NewInt(2))}

	term := lazyIfThenElse(cond, then, els)
	got := StrictIf(term)

	require.True(t, uplc.TermEqual(term, got))
}

func TestStrictIfLeavesImpureBranchAlone(t *testing.T) {
	cond := &uplc.BuiltinRef{Name: "true"}
	then := &uplc.ErrorTerm{}
	els := &uplc.Const{Value: uplc.NewInteger(big.NewInt(2))}

	term := lazyIfThenElse(cond, then, els)
	got := StrictIf(term)

	require.True(t, uplc.TermEqual(term, got))
}

func TestStrictIfLeavesPartialBuiltinBranchAlone(t *testing.T) {
	// headList on an empty list fails; collapsing this branch into an eager
	// ifThenElse would force it even when cond picks the other branch.
	cond := &uplc.BuiltinRef{Name: "true"}
	then := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "headList"}, Arg: &uplc.Var{Name: "xs", Index: 1}}
	els := &uplc.Const{Value: uplc.NewInteger(big.NewInt(5))}

	term := lazyIfThenElse(cond, then, els)
	got := StrictIf(term)

	require.True(t, uplc.TermEqual(term, got))
}

func TestIsTrivial(t *testing.T) {
	require.True(t, isTrivial(&uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}))
	require.True(t, isTrivial(&uplc.Var{Name: "x", Index: 1}))
	require.False(t, isTrivial(&uplc.Apply{Fun: &uplc.BuiltinRef{Name: "headList"}, Arg: &uplc.Var{Name: "xs", Index: 1}}))
}
