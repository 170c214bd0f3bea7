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

	"github.com/probeum/scalus-uplc/uplc"
)

// Constant type tags: a 4-bit tag per atomic type; ProtoList/ProtoPair
// recurse into a nested tag list the way the real format does.
const (
	tagInteger byte = iota
	tagByteString
	tagString
	tagUnit
	tagBool
	tagProtoList
	tagProtoPair
	tagData
	tagG1
	tagG2
)

func writeTypeTag(w *Writer, t uplc.TypeTag) {
	switch t.Base {
	case uplc.TyInteger:
		w.WriteBits(uint64(tagInteger), 4)
	case uplc.TyByteString:
		w.WriteBits(uint64(tagByteString), 4)
	case uplc.TyString:
		w.WriteBits(uint64(tagString), 4)
	case uplc.TyUnit:
		w.WriteBits(uint64(tagUnit), 4)
	case uplc.TyBool:
		w.WriteBits(uint64(tagBool), 4)
	case uplc.TyData:
		w.WriteBits(uint64(tagData), 4)
	case uplc.TyG1:
		w.WriteBits(uint64(tagG1), 4)
	case uplc.TyG2:
		w.WriteBits(uint64(tagG2), 4)
	case uplc.TyList:
		w.WriteBits(uint64(tagProtoList), 4)
		writeTypeTag(w, t.Args[0])
	case uplc.TyPair:
		w.WriteBits(uint64(tagProtoPair), 4)
		writeTypeTag(w, t.Args[0])
		writeTypeTag(w, t.Args[1])
	}
}

func readTypeTag(r *Reader) (uplc.TypeTag, error) {
	tag, err := r.ReadBits(4)
	if err != nil {
		return uplc.TypeTag{}, err
	}
	switch byte(tag) {
	case tagInteger:
		return uplc.TypeTag{Base: uplc.TyInteger}, nil
	case tagByteString:
		return uplc.TypeTag{Base: uplc.TyByteString}, nil
	case tagString:
		return uplc.TypeTag{Base: uplc.TyString}, nil
	case tagUnit:
		return uplc.TypeTag{Base: uplc.TyUnit}, nil
	case tagBool:
		return uplc.TypeTag{Base: uplc.TyBool}, nil
	case tagData:
		return uplc.TypeTag{Base: uplc.TyData}, nil
	case tagG1:
		return uplc.TypeTag{Base: uplc.TyG1}, nil
	case tagG2:
		return uplc.TypeTag{Base: uplc.TyG2}, nil
	case tagProtoList:
		elem, err := readTypeTag(r)
		if err != nil {
			return uplc.TypeTag{}, err
		}
		return uplc.TypeTag{Base: uplc.TyList, Args: []uplc.TypeTag{elem}}, nil
	case tagProtoPair:
		fst, err := readTypeTag(r)
		if err != nil {
			return uplc.TypeTag{}, err
		}
		snd, err := readTypeTag(r)
		if err != nil {
			return uplc.TypeTag{}, err
		}
		return uplc.TypeTag{Base: uplc.TyPair, Args: []uplc.TypeTag{fst, snd}}, nil
	default:
		return uplc.TypeTag{}, fmt.Errorf("flat: unknown type tag %d", tag)
	}
}

func valueTypeTag(v uplc.Value) (uplc.TypeTag, error) {
	switch vv := v.(type) {
	case uplc.IntegerValue:
		return uplc.TypeTag{Base: uplc.TyInteger}, nil
	case uplc.ByteStringValue:
		return uplc.TypeTag{Base: uplc.TyByteString}, nil
	case uplc.StringValue:
		return uplc.TypeTag{Base: uplc.TyString}, nil
	case uplc.UnitValue:
		return uplc.TypeTag{Base: uplc.TyUnit}, nil
	case uplc.BoolValue:
		return uplc.TypeTag{Base: uplc.TyBool}, nil
	case uplc.DataValue:
		return uplc.TypeTag{Base: uplc.TyData}, nil
	case uplc.BLSG1Value:
		return uplc.TypeTag{Base: uplc.TyG1}, nil
	case uplc.BLSG2Value:
		return uplc.TypeTag{Base: uplc.TyG2}, nil
	case uplc.ProtoListValue:
		return uplc.TypeTag{Base: uplc.TyList, Args: []uplc.TypeTag{vv.ElemType}}, nil
	case uplc.ProtoPairValue:
		return uplc.TypeTag{Base: uplc.TyPair, Args: []uplc.TypeTag{vv.FstType, vv.SndType}}, nil
	default:
		return uplc.TypeTag{}, fmt.Errorf("flat: value kind %s has no constant encoding", v.Kind())
	}
}

// WriteConstant encodes v's type tag followed by its value bytes.
func WriteConstant(w *Writer, v uplc.Value) error {
	t, err := valueTypeTag(v)
	if err != nil {
		return err
	}
	writeTypeTag(w, t)
	return writeConstantValue(w, t, v)
}

func writeConstantValue(w *Writer, t uplc.TypeTag, v uplc.Value) error {
	switch vv := v.(type) {
	case uplc.IntegerValue:
		WriteInteger(w, vv.V)
	case uplc.ByteStringValue:
		WriteByteString(w, vv.B)
	case uplc.StringValue:
		WriteByteString(w, []byte(vv.S))
	case uplc.UnitValue:
		// no payload
	case uplc.BoolValue:
		w.WriteBit(vv.B)
	case uplc.DataValue:
		WriteByteString(w, EncodeDataCBOR(vv.D))
	case uplc.BLSG1Value:
		b := vv.P.Bytes()
		WriteByteString(w, b[:])
	case uplc.BLSG2Value:
		b := vv.P.Bytes()
		WriteByteString(w, b[:])
	case uplc.ProtoListValue:
		WriteNatUint(w, uint64(len(vv.Items)))
		for _, item := range vv.Items {
			if err := writeConstantValue(w, t.Args[0], item); err != nil {
				return err
			}
		}
	case uplc.ProtoPairValue:
		if err := writeConstantValue(w, t.Args[0], vv.Fst); err != nil {
			return err
		}
		return writeConstantValue(w, t.Args[1], vv.Snd)
	default:
		return fmt.Errorf("flat: value kind %s has no constant encoding", v.Kind())
	}
	return nil
}

// ReadConstant decodes a tagged constant.
func ReadConstant(r *Reader) (uplc.Value, error) {
	t, err := readTypeTag(r)
	if err != nil {
		return nil, err
	}
	return readConstantValue(r, t)
}

func readConstantValue(r *Reader, t uplc.TypeTag) (uplc.Value, error) {
	switch t.Base {
	case uplc.TyInteger:
		n, err := ReadInteger(r)
		if err != nil {
			return nil, err
		}
		return uplc.IntegerValue{V: n}, nil
	case uplc.TyByteString:
		b, err := ReadByteString(r)
		if err != nil {
			return nil, err
		}
		return uplc.ByteStringValue{B: b}, nil
	case uplc.TyString:
		b, err := ReadByteString(r)
		if err != nil {
			return nil, err
		}
		return uplc.StringValue{S: string(b)}, nil
	case uplc.TyUnit:
		return uplc.UnitValue{}, nil
	case uplc.TyBool:
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		return uplc.BoolValue{B: bit}, nil
	case uplc.TyData:
		b, err := ReadByteString(r)
		if err != nil {
			return nil, err
		}
		d, err := DecodeDataCBOR(b)
		if err != nil {
			return nil, err
		}
		return uplc.DataValue{D: d}, nil
	case uplc.TyList:
		n, err := ReadNatUint(r)
		if err != nil {
			return nil, err
		}
		items := make([]uplc.Value, n)
		for i := range items {
			v, err := readConstantValue(r, t.Args[0])
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return uplc.ProtoListValue{ElemType: t.Args[0], Items: items}, nil
	case uplc.TyPair:
		fst, err := readConstantValue(r, t.Args[0])
		if err != nil {
			return nil, err
		}
		snd, err := readConstantValue(r, t.Args[1])
		if err != nil {
			return nil, err
		}
		return uplc.ProtoPairValue{FstType: t.Args[0], SndType: t.Args[1], Fst: fst, Snd: snd}, nil
	default:
		return nil, fmt.Errorf("flat: unsupported constant type tag for decode")
	}
}
