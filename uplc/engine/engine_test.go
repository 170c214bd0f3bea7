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

package engine

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/internal/testfixtures"
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/flat"
)

func testEngineParams(t *testing.T) Params {
	t.Helper()
	mp, err := testfixtures.LoadMachineParams(filepath.Join("..", "..", "internal", "testfixtures", "testdata", "plutus_v1_default.toml"))
	require.NoError(t, err)
	return Params{MachineParams: mp, ConsByteStringMod256: true}
}

func intConst(v int64) *uplc.Const {
	return &uplc.Const{Value: uplc.NewInteger(big.NewInt(v))}
}

func TestEvaluateAppliedBuiltinReturnsValue(t *testing.T) {
	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: intConst(2)},
		Arg: intConst(3),
	}
	program := flat.Program{Version: flat.Version{Major: 1}, Term: term}

	val, err := Evaluate(program, testEngineParams(t))

	require.Nil(t, err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(5)), val))
}

func TestEvaluateRunsThroughOptimizerPipeline(t *testing.T) {
	// (lambda x. 1) (dead pure computation) -- the pipeline's inliner drops
	// the dead argument; the result is 1 whether or not it was dropped.
	dead := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "multiplyInteger"}, Arg: intConst(2)},
		Arg: intConst(3),
	}
	term := &uplc.Apply{Fun: &uplc.LamAbs{Name: "x", Body: intConst(1)}, Arg: dead}
	program := flat.Program{Term: term}

	val, err := Evaluate(program, testEngineParams(t))

	require.Nil(t, err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(1)), val))
}

func TestEvaluateRaisesOnErrorTerm(t *testing.T) {
	program := flat.Program{Term: &uplc.ErrorTerm{}}

	_, err := Evaluate(program, testEngineParams(t))

	require.NotNil(t, err)
}

func TestEvaluateDebugReportsSuccessAndBudget(t *testing.T) {
	program := flat.Program{Term: intConst(9)}

	report := EvaluateDebug(program, testEngineParams(t))

	require.True(t, report.Success)
	require.Nil(t, report.Err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(9)), report.Value))
	require.NotZero(t, report.Budget.Mem)
}

func TestEvaluateDebugReportsFailureWithoutPanicking(t *testing.T) {
	program := flat.Program{Term: &uplc.ErrorTerm{}}

	report := EvaluateDebug(program, testEngineParams(t))

	require.False(t, report.Success)
	require.NotNil(t, report.Err)
}

func TestReportStringRendersSuccessLine(t *testing.T) {
	program := flat.Program{Term: intConst(1)}
	report := EvaluateDebug(program, testEngineParams(t))

	s := report.String()

	require.Contains(t, s, "success: true")
}

func TestDecodedCacheDecodesAndMemoizes(t *testing.T) {
	program := flat.Program{Version: flat.Version{Major: 1}, Term: intConst(5)}
	hexStr, err := flat.EncodeProgram(program)
	require.NoError(t, err)

	cache, err := NewDecodedCache(8)
	require.NoError(t, err)

	first, err := cache.Decode(hexStr)
	require.NoError(t, err)
	require.Equal(t, uint64(1), first.Version.Major)

	second, err := cache.Decode(hexStr)
	require.NoError(t, err)
	require.True(t, uplc.TermEqual(first.Term, second.Term))
}

func TestDecodedCacheRejectsInvalidHex(t *testing.T) {
	cache, err := NewDecodedCache(4)
	require.NoError(t, err)

	_, err = cache.Decode("not-hex")

	require.Error(t, err)
}
