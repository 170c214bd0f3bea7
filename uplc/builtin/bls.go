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
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// bls12381G1DST and bls12381G2DST are the domain separation tags the
// hash-to-curve builtins fall back to when the caller passes an empty DST;
// a non-empty DST argument is used as given.
const bls12381G1DST = "BLS12381G1_XMD:SHA-256_SSWU_RO_POP_"
const bls12381G2DST = "BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

func blsEntries() []Entry {
	return []Entry{
		{name: "bls12_381_G1_add", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG1(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asG1(args[1])
			if err != nil {
				return nil, err
			}
			var aj, bj bls12381.G1Jac
			aj.FromAffine(&a.P)
			bj.FromAffine(&b.P)
			aj.AddAssign(&bj)
			var res bls12381.G1Affine
			res.FromJacobian(&aj)
			return uplc.BLSG1Value{P: res}, nil
		}},
		{name: "bls12_381_G1_neg", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG1(args[0])
			if err != nil {
				return nil, err
			}
			var res bls12381.G1Affine
			res.Neg(&a.P)
			return uplc.BLSG1Value{P: res}, nil
		}},
		{name: "bls12_381_G1_scalarMul", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			k, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			a, err := asG1(args[1])
			if err != nil {
				return nil, err
			}
			var aj bls12381.G1Jac
			aj.FromAffine(&a.P)
			aj.ScalarMultiplication(&aj, k)
			var res bls12381.G1Affine
			res.FromJacobian(&aj)
			return uplc.BLSG1Value{P: res}, nil
		}},
		{name: "bls12_381_G1_equal", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG1(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asG1(args[1])
			if err != nil {
				return nil, err
			}
			return boolVal(a.P.Equal(&b.P)), nil
		}},
		{name: "bls12_381_G1_compress", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG1(args[0])
			if err != nil {
				return nil, err
			}
			b := a.P.Bytes()
			return bsVal(b[:]), nil
		}},
		{name: "bls12_381_G1_uncompress", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			b, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			var p bls12381.G1Affine
			if _, serr := p.SetBytes(b); serr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bls12_381_G1_uncompress: %v", serr)
			}
			return uplc.BLSG1Value{P: p}, nil
		}},
		{name: "bls12_381_G1_hashToGroup", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			msg, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			dst, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			if len(dst) == 0 {
				dst = []byte(bls12381G1DST)
			}
			p, herr := bls12381.HashToG1(msg, dst)
			if herr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bls12_381_G1_hashToGroup: %v", herr)
			}
			return uplc.BLSG1Value{P: p}, nil
		}},

		{name: "bls12_381_G2_add", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG2(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asG2(args[1])
			if err != nil {
				return nil, err
			}
			var aj, bj bls12381.G2Jac
			aj.FromAffine(&a.P)
			bj.FromAffine(&b.P)
			aj.AddAssign(&bj)
			var res bls12381.G2Affine
			res.FromJacobian(&aj)
			return uplc.BLSG2Value{P: res}, nil
		}},
		{name: "bls12_381_G2_neg", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG2(args[0])
			if err != nil {
				return nil, err
			}
			var res bls12381.G2Affine
			res.Neg(&a.P)
			return uplc.BLSG2Value{P: res}, nil
		}},
		{name: "bls12_381_G2_scalarMul", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			k, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			a, err := asG2(args[1])
			if err != nil {
				return nil, err
			}
			var aj bls12381.G2Jac
			aj.FromAffine(&a.P)
			aj.ScalarMultiplication(&aj, k)
			var res bls12381.G2Affine
			res.FromJacobian(&aj)
			return uplc.BLSG2Value{P: res}, nil
		}},
		{name: "bls12_381_G2_equal", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG2(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asG2(args[1])
			if err != nil {
				return nil, err
			}
			return boolVal(a.P.Equal(&b.P)), nil
		}},
		{name: "bls12_381_G2_compress", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG2(args[0])
			if err != nil {
				return nil, err
			}
			b := a.P.Bytes()
			return bsVal(b[:]), nil
		}},
		{name: "bls12_381_G2_uncompress", minVersion: cost.PlutusV3, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			b, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			var p bls12381.G2Affine
			if _, serr := p.SetBytes(b); serr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bls12_381_G2_uncompress: %v", serr)
			}
			return uplc.BLSG2Value{P: p}, nil
		}},
		{name: "bls12_381_G2_hashToGroup", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			msg, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			dst, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			if len(dst) == 0 {
				dst = []byte(bls12381G2DST)
			}
			p, herr := bls12381.HashToG2(msg, dst)
			if herr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bls12_381_G2_hashToGroup: %v", herr)
			}
			return uplc.BLSG2Value{P: p}, nil
		}},

		{name: "bls12_381_millerLoop", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asG1(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asG2(args[1])
			if err != nil {
				return nil, err
			}
			res, merr := bls12381.MillerLoop([]bls12381.G1Affine{a.P}, []bls12381.G2Affine{b.P})
			if merr != nil {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bls12_381_millerLoop: %v", merr)
			}
			return uplc.MLResultValue{V: res}, nil
		}},
		{name: "bls12_381_mulMlResult", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asMLResult(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asMLResult(args[1])
			if err != nil {
				return nil, err
			}
			var res bls12381.GT
			res.Mul(&a.V, &b.V)
			return uplc.MLResultValue{V: res}, nil
		}},
		{name: "bls12_381_finalVerify", minVersion: cost.PlutusV3, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			a, err := asMLResult(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asMLResult(args[1])
			if err != nil {
				return nil, err
			}
			left := bls12381.FinalExponentiation(&a.V)
			right := bls12381.FinalExponentiation(&b.V)
			return boolVal(left.Equal(&right)), nil
		}},
	}
}
