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

func integerEntries() []Entry {
	bin := func(name string, f func(a, b *big.Int) (*big.Int, *uplc.EvalError)) Entry {
		return Entry{name: name, minVersion: cost.PlutusV1, forces: 0, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			r, err := f(a, b)
			if err != nil {
				return nil, err
			}
			return intVal(r), nil
		}}
	}
	cmp := func(name string, f func(a, b *big.Int) bool) Entry {
		return Entry{name: name, minVersion: cost.PlutusV1, forces: 0, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			return boolVal(f(a, b)), nil
		}}
	}

	return []Entry{
		bin("addInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			return new(big.Int).Add(a, b), nil
		}),
		bin("subtractInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			return new(big.Int).Sub(a, b), nil
		}),
		bin("multiplyInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			return new(big.Int).Mul(a, b), nil
		}),
		bin("divideInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			if b.Sign() == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "divideInteger: division by zero")
			}
			// Floor division: the quotient rounds toward negative infinity, so
			// the remainder always has the sign of the divisor.
			q, m := new(big.Int), new(big.Int)
			q.DivMod(a, b, m)
			if b.Sign() < 0 && m.Sign() != 0 {
				// big.Int.DivMod is Euclidean already (m >= 0); Plutus wants
				// the remainder to share the divisor's sign, so correct here.
				q.Sub(q, big.NewInt(1))
			}
			return q, nil
		}),
		bin("modInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			if b.Sign() == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "modInteger: division by zero")
			}
			m := new(big.Int).Mod(a, b)
			if b.Sign() < 0 && m.Sign() != 0 {
				m.Add(m, b)
			}
			return m, nil
		}),
		bin("quotientInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			if b.Sign() == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "quotientInteger: division by zero")
			}
			return new(big.Int).Quo(a, b), nil
		}),
		bin("remainderInteger", func(a, b *big.Int) (*big.Int, *uplc.EvalError) {
			if b.Sign() == 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "remainderInteger: division by zero")
			}
			return new(big.Int).Rem(a, b), nil
		}),
		cmp("equalsInteger", func(a, b *big.Int) bool { return a.Cmp(b) == 0 }),
		cmp("lessThanInteger", func(a, b *big.Int) bool { return a.Cmp(b) < 0 }),
		cmp("lessThanEqualsInteger", func(a, b *big.Int) bool { return a.Cmp(b) <= 0 }),
	}
}
