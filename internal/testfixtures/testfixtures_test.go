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

package testfixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc/cost"
)

func TestLoadMachineParamsParsesPlutusV1Default(t *testing.T) {
	params, err := LoadMachineParams("testdata/plutus_v1_default.toml")

	require.NoError(t, err)
	require.Equal(t, cost.PlutusV1, params.Version)
	require.True(t, params.BudgetLimits.Metered)
	require.NotZero(t, params.MachineCosts.Get(cost.StepStartup))
	require.Contains(t, params.BuiltinCostModel, "addInteger")
}

func TestLoadMachineParamsRejectsMissingFile(t *testing.T) {
	_, err := LoadMachineParams("testdata/does_not_exist.toml")

	require.Error(t, err)
}

func TestLoadMachineParamsRejectsWrongLengthBuiltinCostFlat(t *testing.T) {
	_, err := LoadMachineParams("testdata/bad_length.toml")

	require.Error(t, err)
}
