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

// Package crypto collects the pure hash functions the UPLC builtin suite
// needs. It carries no key-management or address-derivation logic — that
// belonged to the chain client this package was lifted from, not to a
// term evaluator.
package crypto

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// KeccakState wraps sha3.state. In addition to the usual hash methods, it
// also supports Read to get a variable amount of data from the hash state.
// Read is faster than Sum because it doesn't copy the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data []byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	d.Write(data)
	d.Read(b)
	return b
}

// SHA3_256 is the NIST SHA3-256 function, distinct from the Keccak variant
// above by its padding byte.
func SHA3_256(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}

// SHA2_256 is the standard-library SHA-256; no ecosystem package improves on
// it, so it is the one hash in this file not grounded on a third-party
// import (see DESIGN.md).
func SHA2_256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Blake2b256 is Blake2b with a 32-byte digest.
func Blake2b256(data []byte) []byte {
	h := blake2b.Sum256(data)
	return h[:]
}

// Blake2b224 is Blake2b with a 28-byte digest, used for script hashes.
func Blake2b224(data []byte) []byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// Only non-nil if the key or size argument is invalid; both are
		// compile-time constants here.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}
