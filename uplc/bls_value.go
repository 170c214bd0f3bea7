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

package uplc

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BLSG1Value wraps a BLS12-381 G1 affine point. Its memory footprint is the
// fixed constant the spec assigns the group, not a function of the point's
// encoding.
type BLSG1Value struct{ P bls12381.G1Affine }

func (BLSG1Value) Kind() ValueKind        { return KindBLSG1 }
func (BLSG1Value) MemoryFootprint() int64 { return 18 }

// BLSG2Value wraps a BLS12-381 G2 affine point.
type BLSG2Value struct{ P bls12381.G2Affine }

func (BLSG2Value) Kind() ValueKind        { return KindBLSG2 }
func (BLSG2Value) MemoryFootprint() int64 { return 36 }

// MLResultValue is a transient product-of-pairings value. It is a Value so
// it can flow through application and force frames like any other result,
// but per spec §3.2 it may never be serialized or persisted as a constant —
// enforced at the flat/CBOR boundary, not here.
type MLResultValue struct{ V bls12381.GT }

func (MLResultValue) Kind() ValueKind        { return KindBLSMLResult }
func (MLResultValue) MemoryFootprint() int64 { return 72 }
