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
	"errors"
	"math/big"
)

// WriteNatural writes a non-negative big.Int as 7-bits-per-byte groups with
// a continuation bit in the high position of each byte, least-significant
// group first.
func WriteNatural(w *Writer, v *big.Int) {
	n := new(big.Int).Set(v)
	mask := big.NewInt(0x7f)
	for {
		chunk := new(big.Int).And(n, mask)
		n.Rsh(n, 7)
		more := n.Sign() != 0
		b := byte(chunk.Uint64())
		if more {
			b |= 0x80
		}
		w.WriteByte(b)
		if !more {
			break
		}
	}
}

// ReadNatural reads a WriteNatural-encoded value.
func ReadNatural(r *Reader) (*big.Int, error) {
	result := new(big.Int)
	shift := uint(0)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		chunk := big.NewInt(int64(b & 0x7f))
		chunk.Lsh(chunk, shift)
		result.Or(result, chunk)
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return result, nil
}

// ZigZag maps a signed integer to an unsigned one: 0,-1,1,-2,2 -> 0,1,2,3,4.
func ZigZag(v *big.Int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Lsh(v, 1)
	}
	n := new(big.Int).Neg(v)
	n.Lsh(n, 1)
	n.Sub(n, big.NewInt(1))
	return n
}

// UnZigZag reverses ZigZag.
func UnZigZag(v *big.Int) *big.Int {
	if v.Bit(0) == 0 {
		return new(big.Int).Rsh(v, 1)
	}
	n := new(big.Int).Add(v, big.NewInt(1))
	n.Rsh(n, 1)
	return n.Neg(n)
}

// WriteInteger writes a signed integer, zigzag-then-natural encoded.
func WriteInteger(w *Writer, v *big.Int) { WriteNatural(w, ZigZag(v)) }

// ReadInteger reverses WriteInteger.
func ReadInteger(r *Reader) (*big.Int, error) {
	n, err := ReadNatural(r)
	if err != nil {
		return nil, err
	}
	return UnZigZag(n), nil
}

// WriteNatUint is the common case of a small non-negative machine integer.
func WriteNatUint(w *Writer, v uint64) { WriteNatural(w, new(big.Int).SetUint64(v)) }

// ReadNatUint reverses WriteNatUint, failing if the value overflows uint64.
func ReadNatUint(r *Reader) (uint64, error) {
	n, err := ReadNatural(r)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, errors.New("flat: natural overflows uint64")
	}
	return n.Uint64(), nil
}
