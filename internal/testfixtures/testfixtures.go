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

// Package testfixtures loads `.toml` test fixtures describing cost-model
// tables and machine parameters, confined to test code — only _test.go files
// (the uplc/cek and uplc/engine tests) import this package, and no non-test
// file under uplc/ or crypto/ does. Never used to parse real ledger
// protocol parameters at runtime; production callers build cost.MachineParams
// from whatever config path the embedding service already uses.
package testfixtures

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"

	"github.com/probeum/scalus-uplc/uplc/cost"
)

// tomlSettings mirrors the teacher's own config-file decoder settings:
// TOML keys use the same names as the Go struct fields, and an unknown
// field in a fixture is always an error (fixtures are hand-written test
// data, not user config — silently ignoring a typo would only hide a bug).
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// MachineCostsFixture mirrors cost.MachineCosts, named fields instead of a
// fixed-size array so a fixture file reads as ten named entries.
type MachineCostsFixture struct {
	Startup ExUnitsFixture
	Var     ExUnitsFixture
	LamAbs  ExUnitsFixture
	Apply   ExUnitsFixture
	Delay   ExUnitsFixture
	Force   ExUnitsFixture
	Const   ExUnitsFixture
	Builtin ExUnitsFixture
	Constr  ExUnitsFixture
	Case    ExUnitsFixture
}

// ExUnitsFixture mirrors cost.ExUnits.
type ExUnitsFixture struct {
	Mem uint64
	CPU uint64
}

func (f ExUnitsFixture) toExUnits() cost.ExUnits {
	return cost.ExUnits{Mem: f.Mem, CPU: f.CPU}
}

func (f MachineCostsFixture) toMachineCosts() cost.MachineCosts {
	return cost.MachineCosts{
		cost.StepStartup: f.Startup.toExUnits(),
		cost.StepVar:     f.Var.toExUnits(),
		cost.StepLamAbs:  f.LamAbs.toExUnits(),
		cost.StepApply:   f.Apply.toExUnits(),
		cost.StepDelay:   f.Delay.toExUnits(),
		cost.StepForce:   f.Force.toExUnits(),
		cost.StepConst:   f.Const.toExUnits(),
		cost.StepBuiltin: f.Builtin.toExUnits(),
		cost.StepConstr:  f.Constr.toExUnits(),
		cost.StepCase:    f.Case.toExUnits(),
	}
}

// BudgetLimitsFixture mirrors cost.BudgetLimits.
type BudgetLimitsFixture struct {
	Mem     uint64
	CPU     uint64
	Metered bool
}

func (f BudgetLimitsFixture) toBudgetLimits() cost.BudgetLimits {
	return cost.BudgetLimits{Mem: f.Mem, CPU: f.CPU, Metered: f.Metered}
}

// MachineParamsFixture is the on-disk shape loaded by LoadMachineParams.
// BuiltinCostFlat is the flat []int64 the same canonical position table
// cost.BuildBuiltinCostModel consumes in production, so a fixture exercises
// the exact same parsing path real protocol parameters go through.
type MachineParamsFixture struct {
	Version         int
	MachineCosts    MachineCostsFixture
	BuiltinCostFlat []int64
	BudgetLimits    BudgetLimitsFixture
}

// LoadMachineParams reads path as TOML and builds a cost.MachineParams from
// it, running BuiltinCostFlat through cost.BuildBuiltinCostModel exactly as
// a real ledger-parameter loader would.
func LoadMachineParams(path string) (cost.MachineParams, error) {
	var fixture MachineParamsFixture
	if err := decodeFile(path, &fixture); err != nil {
		return cost.MachineParams{}, err
	}

	version := cost.Version(fixture.Version)
	builtinCosts, err := cost.BuildBuiltinCostModel(version, fixture.BuiltinCostFlat)
	if err != nil {
		return cost.MachineParams{}, err
	}

	return cost.MachineParams{
		Version:          version,
		MachineCosts:     fixture.MachineCosts.toMachineCosts(),
		BuiltinCostModel: builtinCosts,
		BudgetLimits:     fixture.BudgetLimits.toBudgetLimits(),
	}, nil
}

func decodeFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(v)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	return err
}
