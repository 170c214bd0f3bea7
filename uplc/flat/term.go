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

package flat

import (
	"fmt"
	"math/big"

	"github.com/probeum/scalus-uplc/uplc"
)

// Term tags: a 4-bit tag per Term constructor. Constr/Case are V3 additions.
const (
	termVar byte = iota
	termDelay
	termLamAbs
	termApply
	termConst
	termForce
	termError
	termBuiltin
	termConstr
	termCase
)

var builtinNames []string
var builtinIndex map[string]uint64

// RegisterBuiltinOrder fixes the canonical builtin-name-to-tag-index table
// the flat encoder uses for BuiltinRef terms. Callers supply the registry's
// names once at startup, in the order the ledger's reference flat codec
// assigns them.
func RegisterBuiltinOrder(names []string) {
	builtinNames = names
	builtinIndex = make(map[string]uint64, len(names))
	for i, n := range names {
		builtinIndex[n] = uint64(i)
	}
}

// EncodeTerm flat-encodes t into w.
func EncodeTerm(w *Writer, t uplc.Term) error {
	switch tt := t.(type) {
	case *uplc.Var:
		w.WriteBits(uint64(termVar), 4)
		WriteNatUint(w, uint64(tt.Index))
	case *uplc.Delay:
		w.WriteBits(uint64(termDelay), 4)
		return EncodeTerm(w, tt.Body)
	case *uplc.LamAbs:
		w.WriteBits(uint64(termLamAbs), 4)
		return EncodeTerm(w, tt.Body)
	case *uplc.Apply:
		w.WriteBits(uint64(termApply), 4)
		if err := EncodeTerm(w, tt.Fun); err != nil {
			return err
		}
		return EncodeTerm(w, tt.Arg)
	case *uplc.Const:
		w.WriteBits(uint64(termConst), 4)
		return WriteConstant(w, tt.Value)
	case *uplc.Force:
		w.WriteBits(uint64(termForce), 4)
		return EncodeTerm(w, tt.Body)
	case *uplc.ErrorTerm:
		w.WriteBits(uint64(termError), 4)
	case *uplc.BuiltinRef:
		w.WriteBits(uint64(termBuiltin), 4)
		idx, ok := builtinIndex[tt.Name]
		if !ok {
			return fmt.Errorf("flat: unknown builtin %q (call RegisterBuiltinOrder first)", tt.Name)
		}
		w.WriteBits(idx, 7)
	case *uplc.ConstrTerm:
		w.WriteBits(uint64(termConstr), 4)
		WriteInteger(w, new(big.Int).SetUint64(tt.Tag))
		WriteNatUint(w, uint64(len(tt.Args)))
		for _, a := range tt.Args {
			if err := EncodeTerm(w, a); err != nil {
				return err
			}
		}
	case *uplc.CaseTerm:
		w.WriteBits(uint64(termCase), 4)
		if err := EncodeTerm(w, tt.Scrutinee); err != nil {
			return err
		}
		WriteNatUint(w, uint64(len(tt.Branches)))
		for _, b := range tt.Branches {
			if err := EncodeTerm(w, b); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("flat: unknown term node %T", t)
	}
	return nil
}

// DecodeTerm reverses EncodeTerm.
func DecodeTerm(r *Reader) (uplc.Term, error) {
	tag, err := r.ReadBits(4)
	if err != nil {
		return nil, err
	}
	switch byte(tag) {
	case termVar:
		idx, err := ReadNatUint(r)
		if err != nil {
			return nil, err
		}
		return &uplc.Var{Index: int(idx)}, nil
	case termDelay:
		body, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &uplc.Delay{Body: body}, nil
	case termLamAbs:
		body, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &uplc.LamAbs{Body: body}, nil
	case termApply:
		fn, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		arg, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &uplc.Apply{Fun: fn, Arg: arg}, nil
	case termConst:
		v, err := ReadConstant(r)
		if err != nil {
			return nil, err
		}
		return &uplc.Const{Value: v}, nil
	case termForce:
		body, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &uplc.Force{Body: body}, nil
	case termError:
		return &uplc.ErrorTerm{}, nil
	case termBuiltin:
		idx, err := r.ReadBits(7)
		if err != nil {
			return nil, err
		}
		if int(idx) >= len(builtinNames) {
			return nil, fmt.Errorf("flat: builtin index %d out of range", idx)
		}
		return &uplc.BuiltinRef{Name: builtinNames[idx]}, nil
	case termConstr:
		tagVal, err := ReadInteger(r)
		if err != nil {
			return nil, err
		}
		n, err := ReadNatUint(r)
		if err != nil {
			return nil, err
		}
		args := make([]uplc.Term, n)
		for i := range args {
			a, err := DecodeTerm(r)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return &uplc.ConstrTerm{Tag: tagVal.Uint64(), Args: args}, nil
	case termCase:
		scrutinee, err := DecodeTerm(r)
		if err != nil {
			return nil, err
		}
		n, err := ReadNatUint(r)
		if err != nil {
			return nil, err
		}
		branches := make([]uplc.Term, n)
		for i := range branches {
			b, err := DecodeTerm(r)
			if err != nil {
				return nil, err
			}
			branches[i] = b
		}
		return &uplc.CaseTerm{Scrutinee: scrutinee, Branches: branches}, nil
	default:
		return nil, fmt.Errorf("flat: unknown term tag %d", tag)
	}
}
