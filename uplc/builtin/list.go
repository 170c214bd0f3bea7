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

func listEntries() []Entry {
	return []Entry{
		{name: "chooseList", minVersion: cost.PlutusV1, forces: 2, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			if len(lst.Items) == 0 {
				return args[1], nil
			}
			return args[2], nil
		}},
		{name: "mkCons", minVersion: cost.PlutusV1, forces: 1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[1])
			if err != nil {
				return nil, err
			}
			items := make([]uplc.Value, 0, len(lst.Items)+1)
			items = append(items, args[0])
			items = append(items, lst.Items...)
			return uplc.ProtoListValue{ElemType: lst.ElemType, Items: items}, nil
		}},
		{name: "headList", minVersion: cost.PlutusV1, forces: 1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			if len(lst.Items) == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "headList: empty list")
			}
			return lst.Items[0], nil
		}},
		{name: "tailList", minVersion: cost.PlutusV1, forces: 1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			if len(lst.Items) == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "tailList: empty list")
			}
			return uplc.ProtoListValue{ElemType: lst.ElemType, Items: lst.Items[1:]}, nil
		}},
		{name: "nullList", minVersion: cost.PlutusV1, forces: 1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			return boolVal(len(lst.Items) == 0), nil
		}},
		{name: "mkNilData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			return uplc.ProtoListValue{ElemType: uplc.TypeTag{Base: uplc.TyData}, Items: nil}, nil
		}},
		{name: "mkNilPairData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			pairType := uplc.TypeTag{Base: uplc.TyPair, Args: []uplc.TypeTag{{Base: uplc.TyData}, {Base: uplc.TyData}}}
			return uplc.ProtoListValue{ElemType: pairType, Items: nil}, nil
		}},
	}
}
