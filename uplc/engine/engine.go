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

// Package engine is the pipeline orchestrator: it composes the optimizer
// passes in the fixed order the target Plutus version requires, then hands
// the rewritten term to a fresh CEK machine. It is the only package that
// wires decode, optimize, and evaluate together — callers elsewhere in this
// module never construct a cek.Machine or run an optimizer.Pass directly.
package engine

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/builtin"
	"github.com/probeum/scalus-uplc/uplc/cek"
	"github.com/probeum/scalus-uplc/uplc/cost"
	"github.com/probeum/scalus-uplc/uplc/flat"
	"github.com/probeum/scalus-uplc/uplc/optimizer"
)

// init fixes the flat encoder's builtin tag order once, at program startup,
// from the registry's own canonical name list — the only place in this
// module that calls flat.RegisterBuiltinOrder. The consByteStringMod256
// argument does not affect AllNames's output (it only gates consByteString's
// evaluator), so a single fixed call covers every Params.ConsByteStringMod256
// a caller later chooses.
func init() {
	flat.RegisterBuiltinOrder(builtin.AllNames(true))
}

// Params bundles everything evaluate/evaluateDebug need beyond the program
// itself (spec §6): the ledger protocol's machine parameters, the
// consByteString semantics gate, and the forced-builtin extractor's
// configurable exception set.
type Params struct {
	cost.MachineParams
	ConsByteStringMod256    bool
	ForcedBuiltinExceptions mapset.Set[string]
}

// Evaluate runs program.Term to a final value or a failure (spec §6:
// `evaluate(program, params) -> value | raise`, re-raising any failure the
// CEK machine reports rather than swallowing it).
func Evaluate(program flat.Program, params Params) (uplc.Value, *uplc.EvalError) {
	res := run(program, params)
	return res.Value, res.Err
}

// run decodes nothing itself — program is already a decoded flat.Program —
// and performs the optimize-then-execute half of the pipeline shared by
// Evaluate and EvaluateDebug.
func run(program flat.Program, params Params) cek.Result {
	registry := builtin.NewRegistry(params.Version, params.ConsByteStringMod256)
	optimized := optimizer.Run(program.Term, params.Version, optimizer.Options{
		ForcedBuiltinExceptions: params.ForcedBuiltinExceptions,
	})
	m := cek.New(registry, params.MachineParams)
	return m.Run(optimized)
}
