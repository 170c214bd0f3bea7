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

func pairEntries() []Entry {
	return []Entry{
		{name: "fstPair", minVersion: cost.PlutusV1, forces: 2, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			p, err := asPair(args[0])
			if err != nil {
				return nil, err
			}
			return p.Fst, nil
		}},
		{name: "sndPair", minVersion: cost.PlutusV1, forces: 2, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			p, err := asPair(args[0])
			if err != nil {
				return nil, err
			}
			return p.Snd, nil
		}},
		{name: "mkPairData", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asData(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asData(args[1])
			if err != nil {
				return nil, err
			}
			return uplc.ProtoPairValue{
				FstType: uplc.TypeTag{Base: uplc.TyData}, SndType: uplc.TypeTag{Base: uplc.TyData},
				Fst: uplc.DataValue{D: a}, Snd: uplc.DataValue{D: b},
			}, nil
		}},
	}
}
