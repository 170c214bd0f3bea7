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

// bitOpEntries covers the Plomin-era integer/bit/array builtins. Bit index 0
// is the most significant bit of byte 0 — the same MSB-first-within-byte,
// big-endian-by-default convention integerToByteString uses (see DESIGN.md).
func bitOpEntries() []Entry {
	return []Entry{
		{name: "integerToByteString", minVersion: cost.PlutusPlomin, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bigEndian, err := asBool(args[0])
			if err != nil {
				return nil, err
			}
			width, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			n, err := asInteger(args[2])
			if err != nil {
				return nil, err
			}
			if n.Sign() < 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "integerToByteString: negative input")
			}
			if !width.IsUint64() {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "integerToByteString: width out of range")
			}
			w := int(width.Uint64())
			raw := n.Bytes()
			if w == 0 {
				w = len(raw)
			}
			if len(raw) > w {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "integerToByteString: value does not fit in %d bytes", w)
			}
			out := make([]byte, w)
			copy(out[w-len(raw):], raw)
			if !bigEndian {
				reverseInPlace(out)
			}
			return bsVal(out), nil
		}},
		{name: "byteStringToInteger", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bigEndian, err := asBool(args[0])
			if err != nil {
				return nil, err
			}
			bs, err := asByteString(args[1])
			if err != nil {
				return nil, err
			}
			buf := append([]byte(nil), bs...)
			if !bigEndian {
				reverseInPlace(buf)
			}
			return intVal(new(big.Int).SetBytes(buf)), nil
		}},

		{name: "andByteString", minVersion: cost.PlutusPlomin, arity: 3, eval: bitwiseOp(func(a, b byte) byte { return a & b })},
		{name: "orByteString", minVersion: cost.PlutusPlomin, arity: 3, eval: bitwiseOp(func(a, b byte) byte { return a | b })},
		{name: "xorByteString", minVersion: cost.PlutusPlomin, arity: 3, eval: bitwiseOp(func(a, b byte) byte { return a ^ b })},
		{name: "complementByteString", minVersion: cost.PlutusPlomin, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			out := make([]byte, len(bs))
			for i, b := range bs {
				out[i] = ^b
			}
			return bsVal(out), nil
		}},

		{name: "readBit", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			pos, perr := bitPosition(bs, idx)
			if perr != nil {
				return nil, perr
			}
			byteIdx, bitIdx := pos/8, pos%8
			mask := byte(0x80 >> uint(bitIdx))
			return boolVal(bs[byteIdx]&mask != 0), nil
		}},
		{name: "writeBits", minVersion: cost.PlutusPlomin, arity: 3, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			idxList, err := asList(args[1])
			if err != nil {
				return nil, err
			}
			bit, err := asBool(args[2])
			if err != nil {
				return nil, err
			}
			out := append([]byte(nil), bs...)
			for _, iv := range idxList.Items {
				idx, ierr := asInteger(iv)
				if ierr != nil {
					return nil, ierr
				}
				pos, perr := bitPosition(out, idx)
				if perr != nil {
					return nil, perr
				}
				byteIdx, bitIdx := pos/8, pos%8
				mask := byte(0x80 >> uint(bitIdx))
				if bit {
					out[byteIdx] |= mask
				} else {
					out[byteIdx] &^= mask
				}
			}
			return bsVal(out), nil
		}},
		{name: "replicateByte", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			length, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			if length.Sign() < 0 || !length.IsInt64() {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "replicateByte: bad length")
			}
			if b.Sign() < 0 || b.Cmp(big.NewInt(255)) > 0 {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "replicateByte: byte value out of range")
			}
			out := make([]byte, length.Int64())
			for i := range out {
				out[i] = byte(b.Int64())
			}
			return bsVal(out), nil
		}},
		{name: "shiftByteString", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			shift, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			return bsVal(shiftBits(bs, int(shift.Int64()))), nil
		}},
		{name: "rotateByteString", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			rot, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			return bsVal(rotateBits(bs, int(rot.Int64()))), nil
		}},
		{name: "countSetBits", minVersion: cost.PlutusPlomin, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			var count int64
			for _, b := range bs {
				count += int64(popcount(b))
			}
			return intVal(big.NewInt(count)), nil
		}},
		{name: "findFirstSetBit", minVersion: cost.PlutusPlomin, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			bs, err := asByteString(args[0])
			if err != nil {
				return nil, err
			}
			for i, b := range bs {
				if b == 0 {
					continue
				}
				for bit := 0; bit < 8; bit++ {
					if b&(0x80>>uint(bit)) != 0 {
						return intVal(big.NewInt(int64(i*8 + bit))), nil
					}
				}
			}
			return intVal(big.NewInt(-1)), nil
		}},

		{name: "lengthOfArray", minVersion: cost.PlutusPlomin, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			return intVal(big.NewInt(int64(len(lst.Items)))), nil
		}},
		{name: "indexArray", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := asInteger(args[1])
			if err != nil {
				return nil, err
			}
			if !idx.IsInt64() || idx.Int64() < 0 || idx.Int64() >= int64(len(lst.Items)) {
				return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "indexArray: index out of range")
			}
			return lst.Items[idx.Int64()], nil
		}},
		{name: "listToArray", minVersion: cost.PlutusPlomin, arity: 1, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			return lst, nil
		}},
		{name: "multiIndexArray", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			lst, err := asList(args[0])
			if err != nil {
				return nil, err
			}
			idxList, err := asList(args[1])
			if err != nil {
				return nil, err
			}
			out := make([]uplc.Value, len(idxList.Items))
			for i, iv := range idxList.Items {
				idx, ierr := asInteger(iv)
				if ierr != nil {
					return nil, ierr
				}
				if !idx.IsInt64() || idx.Int64() < 0 || idx.Int64() >= int64(len(lst.Items)) {
					return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "multiIndexArray: index out of range")
				}
				out[i] = lst.Items[idx.Int64()]
			}
			return uplc.ProtoListValue{ElemType: lst.ElemType, Items: out}, nil
		}},
		{name: "dropList", minVersion: cost.PlutusPlomin, arity: 2, eval: func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
			n, err := asInteger(args[0])
			if err != nil {
				return nil, err
			}
			lst, err := asList(args[1])
			if err != nil {
				return nil, err
			}
			k := n.Int64()
			if k < 0 {
				k = 0
			}
			if k > int64(len(lst.Items)) {
				k = int64(len(lst.Items))
			}
			return uplc.ProtoListValue{ElemType: lst.ElemType, Items: lst.Items[k:]}, nil
		}},
	}
}

func bitwiseOp(op func(a, b byte) byte) EvalFunc {
	return func(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
		shortest, err := asBool(args[0])
		if err != nil {
			return nil, err
		}
		a, err := asByteString(args[1])
		if err != nil {
			return nil, err
		}
		b, err := asByteString(args[2])
		if err != nil {
			return nil, err
		}
		n := len(a)
		if len(b) > n {
			n = len(b)
		}
		if shortest {
			n = len(a)
			if len(b) < n {
				n = len(b)
			}
		} else if len(a) != len(b) {
			return nil, uplc.NewDomainError(uplc.CatBuiltinApp, "bitwise op: unequal lengths without shortest-padding")
		}
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			out[i] = op(a[i], b[i])
		}
		return bsVal(out), nil
	}
}

// bitPosition validates idx against the bit-length of bs and returns it as an int.
func bitPosition(bs []byte, idx *big.Int) (int, *uplc.EvalError) {
	if !idx.IsInt64() {
		return 0, uplc.NewDomainError(uplc.CatBuiltinApp, "bit index out of range")
	}
	pos := idx.Int64()
	if pos < 0 || pos >= int64(len(bs))*8 {
		return 0, uplc.NewDomainError(uplc.CatBuiltinApp, "bit index out of range")
	}
	return int(pos), nil
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

func reverseInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// shiftBits shifts the whole bytestring as one big-endian bit vector; n > 0
// shifts left (toward bit 0), n < 0 shifts right, vacated bits are zero.
func shiftBits(bs []byte, n int) []byte {
	total := len(bs) * 8
	out := make([]byte, len(bs))
	if total == 0 {
		return out
	}
	for i := 0; i < total; i++ {
		src := i + n
		if src < 0 || src >= total {
			continue
		}
		if getBit(bs, src) {
			setBit(out, i)
		}
	}
	return out
}

// rotateBits is shiftBits with wraparound instead of zero-fill.
func rotateBits(bs []byte, n int) []byte {
	total := len(bs) * 8
	out := make([]byte, len(bs))
	if total == 0 {
		return out
	}
	n = ((n % total) + total) % total
	for i := 0; i < total; i++ {
		src := (i + n) % total
		if getBit(bs, src) {
			setBit(out, i)
		}
	}
	return out
}

func getBit(bs []byte, pos int) bool {
	return bs[pos/8]&(0x80>>uint(pos%8)) != 0
}

func setBit(bs []byte, pos int) {
	bs[pos/8] |= 0x80 >> uint(pos%8)
}
