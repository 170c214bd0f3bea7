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

// Package optimizer holds the term-rewrite passes that run between decoding
// a program and handing it to the CEK machine: each is an idempotent,
// observation-preserving rewrite over the Term AST.
package optimizer

import (
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/builtin"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// purityRegistry is consulted only for each builtin's arity, never invoked —
// the broadest registry (every builtin, every version) is the right shape
// for a static purity check that must work regardless of which version the
// pipeline is actually targeting.
var purityRegistry = builtin.NewRegistry(cost.PlutusPlomin, true)

// totalPureBuiltins is the fixed allow-list of builtins that are total and
// side-effect-free over every well-typed argument vector: they never raise
// a DomainError/TypeMismatch and never append to the trace log. A saturated
// application of any builtin NOT in this set (divideInteger/modInteger on a
// zero divisor, headList/tailList on an empty list, indexByteString and
// sliceByteString, the un*Data family on the wrong variant, the
// verify*Signature family on malformed inputs, trace's log side effect, ...)
// must never be treated as pure — dropping or double-evaluating it would
// change whether the program fails and what it logs.
var totalPureBuiltins = map[string]bool{
	"addInteger": true, "subtractInteger": true, "multiplyInteger": true,
	"equalsInteger": true, "lessThanInteger": true, "lessThanEqualsInteger": true,

	"appendByteString": true, "consByteString": true, "lengthOfByteString": true,
	"equalsByteString": true, "lessThanByteString": true, "lessThanEqualsByteString": true,

	"sha2_256": true, "sha3_256": true, "blake2b_256": true,
	"blake2b_224": true, "keccak_256": true,

	"appendString": true, "equalsString": true, "encodeUtf8": true,

	"ifThenElse": true, "chooseUnit": true, "fstPair": true, "sndPair": true,
	"chooseList": true, "mkCons": true, "nullList": true,

	"chooseData": true, "constrData": true, "mapData": true, "listData": true,
	"iData": true, "bData": true, "equalsData": true,
	"mkPairData": true, "mkNilData": true, "mkNilPairData": true, "serialiseData": true,

	"bls12_381_G1_add": true, "bls12_381_G1_neg": true, "bls12_381_G1_scalarMul": true,
	"bls12_381_G1_equal": true, "bls12_381_G1_compress": true, "bls12_381_G1_hashToGroup": true,
	"bls12_381_G2_add": true, "bls12_381_G2_neg": true, "bls12_381_G2_scalarMul": true,
	"bls12_381_G2_equal": true, "bls12_381_G2_compress": true, "bls12_381_G2_hashToGroup": true,
	"bls12_381_millerLoop": true, "bls12_381_mulMlResult": true, "bls12_381_finalVerify": true,

	"byteStringToInteger": true, "andByteString": true, "orByteString": true,
	"xorByteString": true, "complementByteString": true,
	"shiftByteString": true, "rotateByteString": true,
	"countSetBits": true, "findFirstSetBit": true,
}

// EtaReduce rewrites every subterm of the shape `λx. (f x)` to `f`, bottom
// up, provided x does not occur free in f and f is pure. Idempotent: a
// second pass over its own output is a no-op.
func EtaReduce(t uplc.Term) uplc.Term {
	return etaRewrite(t)
}

func etaRewrite(t uplc.Term) uplc.Term {
	switch n := t.(type) {
	case *uplc.LamAbs:
		body := etaRewrite(n.Body)
		if ap, ok := body.(*uplc.Apply); ok {
			if v, ok := ap.Arg.(*uplc.Var); ok && v.Index == 1 && !uplc.IsFreeAtDepth0(ap.Fun) {
				f := decrementFreeIndices(ap.Fun)
				if isPure(f) {
					return f
				}
			}
		}
		return &uplc.LamAbs{Name: n.Name, Body: body}
	case *uplc.Apply:
		return &uplc.Apply{Fun: etaRewrite(n.Fun), Arg: etaRewrite(n.Arg)}
	case *uplc.Delay:
		return &uplc.Delay{Body: etaRewrite(n.Body)}
	case *uplc.Force:
		return &uplc.Force{Body: etaRewrite(n.Body)}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = etaRewrite(a)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = etaRewrite(b)
		}
		return &uplc.CaseTerm{Scrutinee: etaRewrite(n.Scrutinee), Branches: branches}
	default:
		return t
	}
}

// decrementFreeIndices un-shifts a term living one binder down (inside the
// λx. eta-reduce is eliminating) back out to the enclosing scope. Only
// called once the IsFreeAtDepth0 side condition has confirmed the term
// never references that binder.
func decrementFreeIndices(t uplc.Term) uplc.Term {
	return decAt(t, 0)
}

func decAt(t uplc.Term, cutoff int) uplc.Term {
	switch n := t.(type) {
	case *uplc.Var:
		if n.Index > cutoff+1 {
			return &uplc.Var{Name: n.Name, Index: n.Index - 1}
		}
		return n
	case *uplc.LamAbs:
		return &uplc.LamAbs{Name: n.Name, Body: decAt(n.Body, cutoff+1)}
	case *uplc.Apply:
		return &uplc.Apply{Fun: decAt(n.Fun, cutoff), Arg: decAt(n.Arg, cutoff)}
	case *uplc.Delay:
		return &uplc.Delay{Body: decAt(n.Body, cutoff)}
	case *uplc.Force:
		return &uplc.Force{Body: decAt(n.Body, cutoff)}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = decAt(a, cutoff)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = decAt(b, cutoff)
		}
		return &uplc.CaseTerm{Scrutinee: decAt(n.Scrutinee, cutoff), Branches: branches}
	default:
		return t
	}
}

// isPure implements spec §4.G.1's purity predicate: any value-producing leaf,
// a collapsible Force(Delay(t)) over a pure t, or a saturated pure-builtin
// application with pure argument terms. Never an unsaturated builtin,
// Error, or a bare Apply (which might fail or loop).
func isPure(t uplc.Term) bool {
	switch n := t.(type) {
	case *uplc.Var, *uplc.Const, *uplc.LamAbs, *uplc.BuiltinRef:
		return true
	case *uplc.Delay:
		return true
	case *uplc.Force:
		switch b := n.Body.(type) {
		case *uplc.Delay:
			return isPure(b.Body)
		case *uplc.BuiltinRef, *uplc.Force:
			// Forcing a (possibly partial) builtin only decrements its
			// pending force count; it never evaluates arbitrary code and
			// never fails, so it is pure regardless of saturation.
			return isPure(b)
		}
		return false
	case *uplc.Apply:
		fn, args := flattenApply(n)
		ref, ok := fn.(*uplc.BuiltinRef)
		if !ok || !totalPureBuiltins[ref.Name] {
			return false
		}
		entry, known := purityRegistry.Lookup(ref.Name)
		if !known || len(args) != entry.Arity() {
			return false
		}
		for _, a := range args {
			if !isPure(a) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// flattenApply unwraps a left-nested Apply chain into (head, args in order).
func flattenApply(t uplc.Term) (uplc.Term, []uplc.Term) {
	var args []uplc.Term
	cur := t
	for {
		ap, ok := cur.(*uplc.Apply)
		if !ok {
			break
		}
		args = append([]uplc.Term{ap.Arg}, args...)
		cur = ap.Fun
	}
	return cur, args
}
