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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA2_256ProducesCorrectDigest(t *testing.T) {
	got := SHA2_256([]byte("abc"))
	want, err := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestBlake2b224Produces28ByteDigest(t *testing.T) {
	got := Blake2b224([]byte("hello"))

	require.Len(t, got, 28)
}

func TestBlake2b256Produces32ByteDigest(t *testing.T) {
	got := Blake2b256([]byte("hello"))

	require.Len(t, got, 32)
}

func TestKeccak256DiffersFromSHA3_256(t *testing.T) {
	keccak := Keccak256([]byte("hello"))
	sha3 := SHA3_256([]byte("hello"))

	require.NotEqual(t, keccak, sha3)
}

func TestHashesAreDeterministic(t *testing.T) {
	require.Equal(t, SHA2_256([]byte("x")), SHA2_256([]byte("x")))
	require.Equal(t, Blake2b224([]byte("x")), Blake2b224([]byte("x")))
	require.Equal(t, Keccak256([]byte("x")), Keccak256([]byte("x")))
}
