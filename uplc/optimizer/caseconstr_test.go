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

func intConst(v int64) *uplc.Const {
	return &uplc.Const{Value: uplc.NewInteger(big.NewInt(v))}
}

func TestCompactCaseConstrRewritesThreeArgChain(t *testing.T) {
	f := &uplc.BuiltinRef{Name: "addInteger"}
	term := &uplc.Apply{
		Fun: &uplc.Apply{
			Fun: &uplc.Apply{Fun: f, Arg: intConst(1)},
			Arg: intConst(2),
		},
		Arg: intConst(3),
	}

	got := CompactCaseConstr(term)

	caseTerm, ok := got.(*uplc.CaseTerm)
	require.True(t, ok)
	require.Len(t, caseTerm.Branches, 1)
	require.True(t, uplc.TermEqual(f, caseTerm.Branches[0]))

	constr, ok := caseTerm.Scrutinee.(*uplc.ConstrTerm)
	require.True(t, ok)
	require.Equal(t, uint64(0), constr.Tag)
	require.Len(t, constr.Args, 3)
	require.True(t, uplc.TermEqual(intConst(1), constr.Args[0]))
	require.True(t, uplc.TermEqual(intConst(2), constr.Args[1]))
	require.True(t, uplc.TermEqual(intConst(3), constr.Args[2]))
}

func TestCompactCaseConstrLeavesTwoArgChainAlone(t *testing.T) {
	f := &uplc.BuiltinRef{Name: "addInteger"}
	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: f, Arg: intConst(1)},
		Arg: intConst(2),
	}

	got := CompactCaseConstr(term)

	require.True(t, uplc.TermEqual(term, got))
}
