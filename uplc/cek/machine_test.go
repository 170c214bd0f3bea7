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

package cek

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/internal/testfixtures"
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/builtin"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

func testParams(t *testing.T) cost.MachineParams {
	t.Helper()
	params, err := testfixtures.LoadMachineParams(filepath.Join("..", "..", "internal", "testfixtures", "testdata", "plutus_v1_default.toml"))
	require.NoError(t, err)
	return params
}

func intConst(v int64) *uplc.Const {
	return &uplc.Const{Value: uplc.NewInteger(big.NewInt(v))}
}

func TestMachineRunIdentityApply(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: &uplc.Var{Name: "x", Index: 1}},
		Arg: intConst(42),
	}

	res := m.Run(term)

	require.Nil(t, res.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(42)), res.Value))
}

func TestMachineRunSaturatedBuiltinApplication(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: intConst(2)},
		Arg: intConst(3),
	}

	res := m.Run(term)

	require.Nil(t, res.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(5)), res.Value))
}

func TestMachineRunErrorTermRaises(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	res := m.Run(&uplc.ErrorTerm{})

	require.NotNil(t, res.Err)
	require.Nil(t, res.Value)
}

func TestMachineRunForceDelayRoundTrips(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.Force{Body: &uplc.Delay{Body: intConst(7)}}

	res := m.Run(term)

	require.Nil(t, res.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(7)), res.Value))
}

func TestMachineRunUnboundVariableFails(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	res := m.Run(&uplc.Var{Name: "x", Index: 1})

	require.NotNil(t, res.Err)
}

func TestMachineRunAppliedNonFunctionFails(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.Apply{Fun: intConst(1), Arg: intConst(2)}

	res := m.Run(term)

	require.NotNil(t, res.Err)
}

func TestMachineRunBudgetOverrunFails(t *testing.T) {
	params := testParams(t)
	params.BudgetLimits = cost.BudgetLimits{Mem: 1, CPU: 1, Metered: true}
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	res := m.Run(intConst(1))

	require.NotNil(t, res.Err)
}

func TestMachineRunConstrCaseDispatchesCorrectBranch(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.CaseTerm{
		Scrutinee: &uplc.ConstrTerm{Tag: 1, Args: []uplc.Term{intConst(9)}},
		Branches: []uplc.Term{
			&uplc.LamAbs{Name: "x", Body: intConst(0)},
			&uplc.LamAbs{Name: "x", Body: &uplc.Var{Name: "x", Index: 1}},
		},
	}

	res := m.Run(term)

	require.Nil(t, res.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(9)), res.Value))
}

func TestMachineRunCaseMissingBranchFails(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.CaseTerm{
		Scrutinee: &uplc.ConstrTerm{Tag: 5},
		Branches:  []uplc.Term{&uplc.LamAbs{Name: "x", Body: intConst(0)}},
	}

	res := m.Run(term)

	require.NotNil(t, res.Err)
}

func TestMachineRunTraceAppendsLogAndReturnsSecondArg(t *testing.T) {
	params := testParams(t)
	registry := builtin.NewRegistry(params.Version, true)
	m := New(registry, params)

	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "trace"}, Arg: &uplc.Const{Value: uplc.StringValue{S: "hello"}}},
		Arg: intConst(1),
	}

	res := m.Run(term)

	require.Nil(t, res.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(1)), res.Value))
	require.Equal(t, []string{"hello"}, res.TraceLog)
}
