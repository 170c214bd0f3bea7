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

package cost

// Version is the Plutus ledger language major version. V3 introduces
// Constr/Case and BLS12-381; the later Plomin upgrade adds the integer-bit
// builtins on top of V3's surface.
type Version int

const (
	PlutusV1 Version = iota
	PlutusV2
	PlutusV3
	PlutusPlomin
)

// StepKind enumerates the ten per-step categories machine costs are charged
// against (spec §4.C).
type StepKind int

const (
	StepStartup StepKind = iota
	StepVar
	StepLamAbs
	StepApply
	StepDelay
	StepForce
	StepConst
	StepBuiltin
	StepConstr
	StepCase
)

// MachineCosts is one constant (mem,cpu) cost per step category.
type MachineCosts [10]ExUnits

func (m MachineCosts) Get(k StepKind) ExUnits { return m[k] }

// BuiltinCostModel maps a builtin's stable name to the cost-function shape
// used to charge its BuiltinApp event.
type BuiltinCostModel map[string]Shape

// BudgetLimits is the optional (mem_max,cpu_max) pair. When Metered is
// false, evaluation is unmetered (test mode) and the spender never signals
// overrun.
type BudgetLimits struct {
	Mem     uint64
	CPU     uint64
	Metered bool
}

// MachineParams bundles everything the CEK machine needs that isn't part of
// the program itself: step costs, per-builtin cost functions, and the
// optional budget ceiling. It is consumed from ledger protocol parameters
// by the caller (spec §6) — this package never reaches out for it.
type MachineParams struct {
	Version          Version
	MachineCosts     MachineCosts
	BuiltinCostModel BuiltinCostModel
	BudgetLimits     BudgetLimits
}

// DefaultMachineCosts returns the approximate mainnet machine-cost constants
// used when no cost-model table was supplied. Real protocol parameters
// always override this — it exists so unit tests and `evaluateDebug`
// examples don't need to hand-build a MachineParams from scratch.
func DefaultMachineCosts() MachineCosts {
	flat := ExUnits{Mem: 100, CPU: 23000}
	return MachineCosts{
		StepStartup: {Mem: 100, CPU: 100},
		StepVar:     flat,
		StepLamAbs:  flat,
		StepApply:   flat,
		StepDelay:   flat,
		StepForce:   flat,
		StepConst:   flat,
		StepBuiltin: flat,
		StepConstr:  flat,
		StepCase:    flat,
	}
}
