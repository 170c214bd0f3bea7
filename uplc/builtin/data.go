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
	"math/big"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
	"github.com/probeum/scalus-uplc/uplc/flat"
)

func dataEntries() []Entry {
	return []Entry{
		{name: "chooseData", minVersion: cost.PlutusV1, forces: 1, arity: 6, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			switch d.Kind() {
			case uplc.DConstr:
				return args[1], nil
			case uplc.DMap:
				return args[2], nil
			case uplc.DList:
				return args[3], nil
			case uplc.DI:
				return args[4], nil
			default:
				return args[5], nil
			}
		}},
		{name: "constrData", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			tag, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			lst, err := asList(args[1])
			if err != nil {
				return nil, err
			}
			fields := make([]uplc.Data, len(lst.Items))
			for i, it := range lst.Items {
				d, derr := asData(it)
				if derr != nil {
					return nil, derr
				}
				fields[i] = d
			}
			return uplc.DataValue{D: uplc.NewDataConstr(tag.Uint64(), fields)}, nil
		}},
		{name: "mapData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			pairs := make([]uplc.DataPair, len(lst.Items))
			for i, it := range lst.Items {
				p, perr := asPair(it)
				if perr != nil {
					return nil, perr
				}
				k, kerr := asData(p.Fst)
				if kerr != nil {
					return nil, kerr
				}
				v, verr := asData(p.Snd)
				if verr != nil {
					return nil, verr
				}
				pairs[i] = uplc.DataPair{Key: k, Value: v}
			}
			return uplc.DataValue{D: uplc.NewDataMap(pairs)}, nil
		}},
		{name: "listData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			items := make([]uplc.Data, len(lst.Items))
			for i, it := range lst.Items {
				d, derr := asData(it)
				if derr != nil {
					return nil, derr
				}
				items[i] = d
			}
			return uplc.DataValue{D: uplc.NewDataList(items)}, nil
		}},
		{name: "iData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			n, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			return uplc.DataValue{D: uplc.NewDataI(n)}, nil
		}},
		{name: "bData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			b, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			return uplc.DataValue{D: uplc.NewDataB(b)}, nil
		}},
		{name: "unConstrData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			if d.Kind() != uplc.DConstr {
				return nil, uplc.NewDecodeError(uplc.CatBuiltinApp, "unConstrData: not a Constr")
			}
			items := make([]uplc.Value, len(d.ConstrFields()))
			for i, f := range d.ConstrFields() {
				items[i] = uplc.DataValue{D: f}
			}
			fieldsList := uplc.ProtoListValue{ElemType: uplc.TypeTag{Base: uplc.TyData}, Items: items}
			tag := new(big.Int).SetUint64(d.ConstrTag())
			return uplc.ProtoPairValue{
				FstType: uplc.TypeTag{Base: uplc.TyInteger}, SndType: uplc.TypeTag{Base: uplc.TyList, Args: []uplc.TypeTag{{Base: uplc.TyData}}},
				Fst: intVal(tag), Snd: fieldsList,
			}, nil
		}},
		{name: "unMapData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			if d.Kind() != uplc.DMap {
				return nil, uplc.NewDecodeError(uplc.CatBuiltinApp, "unMapData: not a Map")
			}
			items := make([]uplc.Value, len(d.MapPairs()))
			pairType := uplc.TypeTag{Base: uplc.TyPair, Args: []uplc.TypeTag{{Base: uplc.TyData}, {Base: uplc.TyData}}}
			for i, p := range d.MapPairs() {
				items[i] = uplc.ProtoPairValue{
					FstType: uplc.TypeTag{Base: uplc.TyData}, SndType: uplc.TypeTag{Base: uplc.TyData},
					Fst: uplc.DataValue{D: p.Key}, Snd: uplc.DataValue{D: p.Value},
				}
			}
			return uplc.ProtoListValue{ElemType: pairType, Items: items}, nil
		}},
		{name: "unListData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			if d.Kind() != uplc.DList {
				return nil, uplc.NewDecodeError(uplc.CatBuiltinApp, "unListData: not a List")
			}
			items := make([]uplc.Value, len(d.ListItems()))
			for i, it := range d.ListItems() {
				items[i] = uplc.DataValue{D: it}
			}
			return uplc.ProtoListValue{ElemType: uplc.TypeTag{Base: uplc.TyData}, Items: items}, nil
		}},
		{name: "unIData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			if d.Kind() != uplc.DI {
				return nil, uplc.NewDecodeError(uplc.CatBuiltinApp, "unIData: not an I")
			}
			return intVal(d.IntValue()), nil
		}},
		{name: "unBData", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			if d.Kind() != uplc.DB {
				return nil, uplc.NewDecodeError(uplc.CatBuiltinApp, "unBData: not a B")
			}
			return bsVal(d.BytesValue()), nil
		}},
		{name: "equalsData", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asData(args[1])
			if err != nil {
				return nil, err
			}
			return boolVal(uplc.DataEqual(a, b)), nil
		}},
		{name: "serialiseData", minVersion: cost.PlutusV2, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			d, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			return bsVal(flat.EncodeDataCBOR(d)), nil
		}},
	}
}
