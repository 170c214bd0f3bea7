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

package cost

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// ErrCostModelShape is returned when a flat cost-model array doesn't match
// the canonical position table for the requested version — wrong length or
// (equivalently) a position left unassigned.
type ErrCostModelShape struct {
	Version  Version
	Want     int
	Got      int
}

func (e *ErrCostModelShape) Error() string {
	return fmt.Sprintf("cost model for version %d: want %d flat entries, got %d", e.Version, e.Want, e.Got)
}

// tableEntry is one position of the canonical per-version table: which
// builtin it parameterizes, how many flat ints its shape consumes, and how
// to build the Shape from those ints.
type tableEntry struct {
	Builtin  string
	NumArgs  int
	Build    func(p []int64) Shape
}

// linearEntry registers a builtin whose shape is built from a single
// four-int linear pair (memIntercept, memSlope, cpuIntercept, cpuSlope) —
// the common case for Linear, LinearInX/Y/Z, AddedSizes, MultipliedSizes,
// MinSize and MaxSize.
func linearEntry(name string, ctor func(p linearPair) Shape) tableEntry {
	return tableEntry{
		Builtin: name,
		NumArgs: 4,
		Build: func(p []int64) Shape {
			return ctor(linearPair{MemIntercept: p[0], MemSlope: p[1], CPUIntercept: p[2], CPUSlope: p[3]})
		},
	}
}

// diagonalEntry registers a builtin whose shape is LinearOnDiagonal: the
// four linear-pair ints plus a flat (constMem, constCPU) charged off the
// diagonal.
func diagonalEntry(name string, ctor func(p linearPair, constMem, constCPU int64) Shape) tableEntry {
	return tableEntry{
		Builtin: name,
		NumArgs: 6,
		Build: func(p []int64) Shape {
			return ctor(linearPair{MemIntercept: p[0], MemSlope: p[1], CPUIntercept: p[2], CPUSlope: p[3]}, p[4], p[5])
		},
	}
}

// aboveDiagonalEntry registers a builtin whose shape is ConstAboveDiagonal:
// a threshold, the flat cost charged above it, and a Constant fallback
// below it.
func aboveDiagonalEntry(name string) tableEntry {
	return tableEntry{
		Builtin: name,
		NumArgs: 5,
		Build: func(p []int64) Shape {
			return ConstAboveDiagonal{
				Threshold: p[0],
				ConstMem:  p[1], ConstCPU: p[2],
				Below: Constant{Mem: p[3], CPU: p[4]},
			}
		},
	}
}

// constantEntry registers a builtin whose cost never depends on argument
// size — true only for genuinely O(1) operations (dispatch, fixed-size
// crypto primitives, pair/list/data deconstruction).
func constantEntry(name string) tableEntry {
	return tableEntry{
		Builtin: name,
		NumArgs: 2,
		Build: func(p []int64) Shape {
			return Constant{Mem: p[0], CPU: p[1]}
		},
	}
}

// canonicalTable returns the fixed, ordered list of table entries for a
// version: V1/V2 share a surface, V3 adds Constr/Case-adjacent and BLS
// builtins, Plomin adds the integer-bit family on top of V3.
func canonicalTable(v Version) []tableEntry {
	linear := func(name string, wrap func(linearPair) Shape) tableEntry { return linearEntry(name, wrap) }
	onDiagonal := func(name string) tableEntry {
		return diagonalEntry(name, func(p linearPair, cm, cc int64) Shape {
			return LinearOnDiagonal{linearPair: p, ConstMem: cm, ConstCPU: cc}
		})
	}
	base := []tableEntry{
		linear("addInteger", func(p linearPair) Shape { return MaxSize{p} }),
		linear("subtractInteger", func(p linearPair) Shape { return MaxSize{p} }),
		linear("multiplyInteger", func(p linearPair) Shape { return AddedSizes{p} }),
		linear("divideInteger", func(p linearPair) Shape { return MultipliedSizes{p} }),
		linear("modInteger", func(p linearPair) Shape { return MultipliedSizes{p} }),
		linear("quotientInteger", func(p linearPair) Shape { return MultipliedSizes{p} }),
		linear("remainderInteger", func(p linearPair) Shape { return MultipliedSizes{p} }),
		aboveDiagonalEntry("equalsInteger"),
		linear("lessThanInteger", func(p linearPair) Shape { return MinSize{p} }),
		linear("lessThanEqualsInteger", func(p linearPair) Shape { return MinSize{p} }),
		linear("appendByteString", func(p linearPair) Shape { return AddedSizes{p} }),
		linear("consByteString", func(p linearPair) Shape { return LinearInY{p} }),
		linear("sliceByteString", func(p linearPair) Shape { return LinearInZ{p} }),
		constantEntry("lengthOfByteString"),
		constantEntry("indexByteString"),
		onDiagonal("equalsByteString"),
		linear("lessThanByteString", func(p linearPair) Shape { return MinSize{p} }),
		linear("lessThanEqualsByteString", func(p linearPair) Shape { return MinSize{p} }),
		linear("sha2_256", func(p linearPair) Shape { return LinearInX{p} }),
		linear("sha3_256", func(p linearPair) Shape { return LinearInX{p} }),
		linear("blake2b_256", func(p linearPair) Shape { return LinearInX{p} }),
		linear("verifyEd25519Signature", func(p linearPair) Shape { return LinearInZ{p} }),
		linear("appendString", func(p linearPair) Shape { return AddedSizes{p} }),
		onDiagonal("equalsString"),
		linear("encodeUtf8", func(p linearPair) Shape { return LinearInX{p} }),
		linear("decodeUtf8", func(p linearPair) Shape { return LinearInX{p} }),
		constantEntry("ifThenElse"),
		constantEntry("chooseUnit"),
		constantEntry("trace"),
		constantEntry("fstPair"),
		constantEntry("sndPair"),
		constantEntry("chooseList"),
		constantEntry("mkCons"),
		constantEntry("headList"),
		constantEntry("tailList"),
		constantEntry("nullList"),
		constantEntry("chooseData"),
		constantEntry("constrData"),
		constantEntry("mapData"),
		constantEntry("listData"),
		constantEntry("iData"),
		constantEntry("bData"),
		constantEntry("unConstrData"),
		constantEntry("unMapData"),
		constantEntry("unListData"),
		constantEntry("unIData"),
		constantEntry("unBData"),
		linear("equalsData", func(p linearPair) Shape { return MinSize{p} }),
		constantEntry("mkPairData"),
		constantEntry("mkNilData"),
		constantEntry("mkNilPairData"),
	}
	if v >= PlutusV2 {
		base = append(base,
			linear("serialiseData", func(p linearPair) Shape { return LinearInX{p} }),
			constantEntry("verifyEcdsaSecp256k1Signature"),
			linear("verifySchnorrSecp256k1Signature", func(p linearPair) Shape { return LinearInZ{p} }),
		)
	}
	if v >= PlutusV3 {
		base = append(base,
			linear("blake2b_224", func(p linearPair) Shape { return LinearInX{p} }),
			linear("keccak_256", func(p linearPair) Shape { return LinearInX{p} }),
			constantEntry("bls12_381_G1_add"), constantEntry("bls12_381_G1_neg"),
			constantEntry("bls12_381_G1_scalarMul"), constantEntry("bls12_381_G1_equal"),
			constantEntry("bls12_381_G1_compress"), constantEntry("bls12_381_G1_uncompress"),
			linear("bls12_381_G1_hashToGroup", func(p linearPair) Shape { return LinearInX{p} }),
			constantEntry("bls12_381_G2_add"), constantEntry("bls12_381_G2_neg"),
			constantEntry("bls12_381_G2_scalarMul"), constantEntry("bls12_381_G2_equal"),
			constantEntry("bls12_381_G2_compress"), constantEntry("bls12_381_G2_uncompress"),
			linear("bls12_381_G2_hashToGroup", func(p linearPair) Shape { return LinearInX{p} }),
			constantEntry("bls12_381_millerLoop"), constantEntry("bls12_381_mulMlResult"),
			constantEntry("bls12_381_finalVerify"),
		)
	}
	if v >= PlutusPlomin {
		base = append(base,
			linear("integerToByteString", func(p linearPair) Shape { return LinearInZ{p} }),
			linear("byteStringToInteger", func(p linearPair) Shape { return LinearInY{p} }),
			linear("andByteString", func(p linearPair) Shape { return AddedSizes{p} }),
			linear("orByteString", func(p linearPair) Shape { return AddedSizes{p} }),
			linear("xorByteString", func(p linearPair) Shape { return AddedSizes{p} }),
			linear("complementByteString", func(p linearPair) Shape { return LinearInX{p} }),
			constantEntry("readBit"),
			linear("writeBits", func(p linearPair) Shape { return LinearInX{p} }),
			linear("replicateByte", func(p linearPair) Shape { return LinearInX{p} }),
			linear("shiftByteString", func(p linearPair) Shape { return LinearInX{p} }),
			linear("rotateByteString", func(p linearPair) Shape { return LinearInX{p} }),
			linear("countSetBits", func(p linearPair) Shape { return LinearInX{p} }),
			linear("findFirstSetBit", func(p linearPair) Shape { return LinearInX{p} }),
		)
	}
	return base
}

// BuildBuiltinCostModel parses a flat []int64 into a BuiltinCostModel using
// the canonical per-version position table (spec §6 point 5, §9 "flat list
// of 64-bit integers"). Every position must be present; excess or missing
// entries are an ErrCostModelShape.
func BuildBuiltinCostModel(v Version, flat []int64) (BuiltinCostModel, error) {
	table := canonicalTable(v)
	want := 0
	for _, e := range table {
		want += e.NumArgs
	}
	if len(flat) != want {
		return nil, &ErrCostModelShape{Version: v, Want: want, Got: len(flat)}
	}
	model := make(BuiltinCostModel, len(table))
	pos := 0
	for _, e := range table {
		model[e.Builtin] = e.Build(flat[pos : pos+e.NumArgs])
		pos += e.NumArgs
	}
	return model, nil
}

// TableCache is the one process-wide, immutable cache spec §9's design
// notes permit: decoded BuiltinCostModel tables keyed by (version, a
// content hash of the flat array). Concurrent first-loads of the same key
// are collapsed by singleflight so only one goroutine ever calls
// BuildBuiltinCostModel for a given key.
type TableCache struct {
	cache *lru.Cache
	group singleflight.Group
}

// NewTableCache builds a cache holding up to size decoded tables.
func NewTableCache(size int) (*TableCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &TableCache{cache: c}, nil
}

type tableCacheKey struct {
	version Version
	length  int
	sum     uint64
}

func keyFor(v Version, flat []int64) tableCacheKey {
	h := fnv.New64a()
	var buf [8]byte
	for _, x := range flat {
		binary.BigEndian.PutUint64(buf[:], uint64(x))
		h.Write(buf[:])
	}
	return tableCacheKey{version: v, length: len(flat), sum: h.Sum64()}
}

// Get returns a cached BuiltinCostModel for (version, flat), building and
// caching it on first use.
func (c *TableCache) Get(v Version, flat []int64) (BuiltinCostModel, error) {
	key := keyFor(v, flat)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(BuiltinCostModel), nil
	}
	result, err, _ := c.group.Do(fmt.Sprint(key), func() (interface{}, error) {
		model, err := BuildBuiltinCostModel(v, flat)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, model)
		return model, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(BuiltinCostModel), nil
}
