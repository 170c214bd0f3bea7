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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc"
)

func init() {
	RegisterBuiltinOrder([]string{"addInteger", "ifThenElse", "sha2_256"})
}

func TestBitWriterReaderRoundTripsArbitraryBits(t *testing.T) {
	w := NewWriter()
	w.WriteBit(true)
	w.WriteBits(0x5A, 8)
	w.WriteBit(false)
	w.Pad()

	r := NewReader(w.Bytes())
	bit, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0x5A), v)

	bit, err = r.ReadBit()
	require.NoError(t, err)
	require.False(t, bit)
}

func TestNaturalAndIntegerRoundTrip(t *testing.T) {
	w := NewWriter()
	WriteNatural(w, big.NewInt(300))
	WriteInteger(w, big.NewInt(-42))
	w.Pad()

	r := NewReader(w.Bytes())
	n, err := ReadNatural(r)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(300), n)

	i, err := ReadInteger(r)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(-42), i)
}

func TestZigZagRoundTripsNegativeAndPositive(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42} {
		z := ZigZag(big.NewInt(v))
		got := UnZigZag(z)
		require.Equal(t, big.NewInt(v), got)
	}
}

func TestWriteReadConstantRoundTripsInteger(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteConstant(w, uplc.NewInteger(big.NewInt(123))))
	w.Pad()

	r := NewReader(w.Bytes())
	v, err := ReadConstant(r)
	require.NoError(t, err)
	require.True(t, uplc.ValuesEqual(uplc.NewInteger(big.NewInt(123)), v))
}

func TestWriteReadConstantRoundTripsByteString(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteConstant(w, uplc.ByteStringValue{B: []byte{1, 2, 3, 4, 5}}))
	w.Pad()

	r := NewReader(w.Bytes())
	v, err := ReadConstant(r)
	require.NoError(t, err)
	require.True(t, uplc.ValuesEqual(uplc.ByteStringValue{B: []byte{1, 2, 3, 4, 5}}, v))
}

func TestWriteReadConstantRoundTripsBool(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteConstant(w, uplc.BoolValue{B: true}))
	w.Pad()

	r := NewReader(w.Bytes())
	v, err := ReadConstant(r)
	require.NoError(t, err)
	require.True(t, uplc.ValuesEqual(uplc.BoolValue{B: true}, v))
}

func TestEncodeDecodeTermRoundTripsApplyOfBuiltin(t *testing.T) {
	term := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Const{Value: uplc.NewInteger(big.NewInt(2))}},
		Arg: &uplc.Const{Value: uplc.NewInteger(big.NewInt(3))},
	}

	var w Writer
	require.NoError(t, EncodeTerm(&w, term))
	w.Pad()

	r := NewReader(w.Bytes())
	got, err := DecodeTerm(r)
	require.NoError(t, err)
	require.True(t, uplc.TermEqual(term, got))
}

func TestEncodeTermRejectsUnknownBuiltin(t *testing.T) {
	var w Writer
	err := EncodeTerm(&w, &uplc.BuiltinRef{Name: "nonexistentBuiltin"})

	require.Error(t, err)
}

func TestEncodeDecodeProgramEnvelopeRoundTrips(t *testing.T) {
	program := Program{
		Version: Version{Major: 1, Minor: 0, Patch: 0},
		Term:    &uplc.Const{Value: uplc.NewInteger(big.NewInt(7))},
	}

	hexStr, err := EncodeProgram(program)
	require.NoError(t, err)

	got, err := DecodeProgram(hexStr)
	require.NoError(t, err)
	require.Equal(t, program.Version, got.Version)
	require.True(t, uplc.TermEqual(program.Term, got.Term))
}

func TestDecodeProgramRejectsUnknownMajorVersion(t *testing.T) {
	program := Program{Version: Version{Major: 2}, Term: &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}}

	hexStr, err := EncodeProgram(program)
	require.NoError(t, err)

	_, err = DecodeProgram(hexStr)
	require.Error(t, err)
}

func TestScriptHashIsDeterministic(t *testing.T) {
	a := ScriptHash(1, []byte("payload"))
	b := ScriptHash(1, []byte("payload"))
	c := ScriptHash(2, []byte("payload"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
