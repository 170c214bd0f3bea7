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

package builtin

import (
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// TraceBuiltinName is the stable name the CEK machine special-cases to
// append the first argument to the evaluation's trace logger (package
// uplc/trace) before discarding it — the builtin itself is pure pass-
// through so Apply can still be fuzzed/tested in isolation without a
// logger in scope.
const TraceBuiltinName = "trace"

func controlEntries() []Entry {
	return []Entry{
		{name: "ifThenElse", minVersion: cost.PlutusV1, forces: 1, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			cond, err := asBool(args[0])
			if err != nil {
				return nil, err
			}
			if cond {
				return args[1], nil
			}
			return args[2], nil
		}},
		{name: "chooseUnit", minVersion: cost.PlutusV1, forces: 1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			if _, ok := args[0].(uplc.UnitValue); !ok {
				return nil, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "chooseUnit: expected unit")
			}
			return args[1], nil
		}},
		{name: TraceBuiltinName, minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			if _, err := asString(args[0]); err != nil {
				return nil, err
			}
			return args[1], nil
		}},
	}
}
