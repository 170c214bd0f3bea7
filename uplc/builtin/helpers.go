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
)

func asInteger(v uplc.Value) (*big.Int, *uplc.EvalError) {
	iv, ok := v.(uplc.IntegerValue)
	if !ok {
		return nil, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected integer, got %s", v.Kind())
	}
	return iv.V, nil
}

func asByteString(v uplc.Value) ([]byte, *uplc.EvalError) {
	bv, ok := v.(uplc.ByteStringValue)
	if !ok {
		return nil, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected bytestring, got %s", v.Kind())
	}
	return bv.B, nil
}

func asString(v uplc.Value) (string, *uplc.EvalError) {
	sv, ok := v.(uplc.StringValue)
	if !ok {
		return "", uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected string, got %s", v.Kind())
	}
	return sv.S, nil
}

func asBool(v uplc.Value) (bool, *uplc.EvalError) {
	bv, ok := v.(uplc.BoolValue)
	if !ok {
		return false, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected bool, got %s", v.Kind())
	}
	return bv.B, nil
}

func asData(v uplc.Value) (uplc.Data, *uplc.EvalError) {
	dv, ok := v.(uplc.DataValue)
	if !ok {
		return uplc.Data{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected data, got %s", v.Kind())
	}
	return dv.D, nil
}

func asList(v uplc.Value) (uplc.ProtoListValue, *uplc.EvalError) {
	lv, ok := v.(uplc.ProtoListValue)
	if !ok {
		return uplc.ProtoListValue{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected list, got %s", v.Kind())
	}
	return lv, nil
}

func asPair(v uplc.Value) (uplc.ProtoPairValue, *uplc.EvalError) {
	pv, ok := v.(uplc.ProtoPairValue)
	if !ok {
		return uplc.ProtoPairValue{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected pair, got %s", v.Kind())
	}
	return pv, nil
}

func asG1(v uplc.Value) (uplc.BLSG1Value, *uplc.EvalError) {
	gv, ok := v.(uplc.BLSG1Value)
	if !ok {
		return uplc.BLSG1Value{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected bls12_381_G1_element, got %s", v.Kind())
	}
	return gv, nil
}

func asG2(v uplc.Value) (uplc.BLSG2Value, *uplc.EvalError) {
	gv, ok := v.(uplc.BLSG2Value)
	if !ok {
		return uplc.BLSG2Value{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected bls12_381_G2_element, got %s", v.Kind())
	}
	return gv, nil
}

func asMLResult(v uplc.Value) (uplc.MLResultValue, *uplc.EvalError) {
	mv, ok := v.(uplc.MLResultValue)
	if !ok {
		return uplc.MLResultValue{}, uplc.NewTypeMismatch(uplc.CatBuiltinApp, "expected bls12_381_MlResult, got %s", v.Kind())
	}
	return mv, nil
}

func boolVal(b bool) uplc.Value    { return uplc.BoolValue{B: b} }
func intVal(v *big.Int) uplc.Value { return uplc.IntegerValue{V: v} }
func bsVal(b []byte) uplc.Value    { return uplc.ByteStringValue{B: b} }
func strVal(s string) uplc.Value   { return uplc.StringValue{S: s} }
