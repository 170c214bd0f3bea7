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
)

func byteStringEntries(consByteStringMod256 bool) []Entry {
	return []Entry{
		{name: "appendByteString", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			out := make([]byte, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return bsVal(out), nil
		}},
		{name: "consByteString", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			n, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			bs, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			var b byte
			if consByteStringMod256 {
				m := new(big.Int).Mod(n, big.NewInt(256))
				b = byte(m.Int64())
			} else {
				if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 255 {
					return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "consByteString: byte %s out of range", n)
				}
				b = byte(n.Int64())
			}
			out := make([]byte, 0, len(bs)+1)
			out = append(out, b)
			out = append(out, bs...)
			return bsVal(out), nil
		}},
		{name: "sliceByteString", minVersion: cost.PlutusV1, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			start, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			length, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			bs, err := asByteString(args[2])
			if err != nil {
				return nil, err
			}
			s := clampIndex(start, len(bs))
			l := clampIndex(length, len(bs))
			end := s + l
			if end > len(bs) {
				end = len(bs)
			}
			if end < s {
				end = s
			}
			out := make([]byte, end-s)
			copy(out, bs[s:end])
			return bsVal(out), nil
		}},
		{name: "lengthOfByteString", minVersion: cost.PlutusV1, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			return intVal(big.NewInt(int64(len(bs)))), nil
		}},
		{name: "indexByteString", minVersion: cost.PlutusV1, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			if !idx.IsInt64() || idx.Sign() < 0 || idx.Int64() >= int64(len(bs)) {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "indexByteString: index %s out of range", idx)
			}
			return intVal(big.NewInt(int64(bs[idx.Int64()]))), nil
		}},
		{name: "equalsByteString", minVersion: cost.PlutusV1, arity: 2, eval: bsCompare(func(c int) bool { return c == 0 })},
		{name: "lessThanByteString", minVersion: cost.PlutusV1, arity: 2, eval: bsCompare(func(c int) bool { return c < 0 })},
		{name: "lessThanEqualsByteString", minVersion: cost.PlutusV1, arity: 2, eval: bsCompare(func(c int) bool { return c <= 0 })},
	}
}

func clampIndex(n *big.Int, max int) int {
	if n.Sign() < 0 {
		return 0
	}
	if !n.IsInt64() || n.Int64() > int64(max) {
		return max
	}
	return int(n.Int64())
}

func bsCompare(pred func(int) bool) EvalFunc {
	return func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
		a, err := asByteString(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asByteString(args[1])
		if err != nil {
			return nil, err
		}
		return boolVal(pred(compareBytes(a, b))), nil
	}
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
