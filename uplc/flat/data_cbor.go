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
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/probeum/scalus-uplc/uplc"
)

// Canonical Plutus Data CBOR: definite-length maps and arrays, byte strings
// longer than 64 bytes as indefinite-length runs of 64-byte chunks, and
// constructor tags 121..127 for small indices, 1280..1400 for the next
// range, and tag 102 carrying [index, fields] beyond that — the convention
// Cardano's ledger CDDL fixes and which no generic CBOR package encodes on
// its own, hence the hand-rolled byte-level writer here.
const (
	tagConstrLowBase  = 121
	tagConstrLowMax   = 127
	tagConstrMidBase  = 1280
	tagConstrMidMax   = 1400
	tagConstrGeneral  = 102
	tagPosBignum      = 2
	tagNegBignum      = 3
	dataChunkSize     = 64
)

// EncodeDataCBOR canonically CBOR-encodes a Data value.
func EncodeDataCBOR(d uplc.Data) []byte {
	var out []byte
	encodeData(&out, d)
	return out
}

func encodeData(out *[]byte, d uplc.Data) {
	switch d.Kind() {
	case uplc.DConstr:
		encodeConstr(out, d)
	case uplc.DMap:
		pairs := d.MapPairs()
		encodeHead(out, 5, uint64(len(pairs)))
		for _, p := range pairs {
			encodeData(out, p.Key)
			encodeData(out, p.Value)
		}
	case uplc.DList:
		items := d.ListItems()
		encodeHead(out, 4, uint64(len(items)))
		for _, it := range items {
			encodeData(out, it)
		}
	case uplc.DI:
		encodeBigInt(out, d.IntValue())
	case uplc.DB:
		encodeChunkedBytes(out, d.BytesValue())
	}
}

func encodeConstr(out *[]byte, d uplc.Data) {
	tag := d.ConstrTag()
	fields := d.ConstrFields()
	switch {
	case tag <= tagConstrLowMax-tagConstrLowBase:
		encodeTag(out, tagConstrLowBase+tag)
		encodeHead(out, 4, uint64(len(fields)))
		for _, f := range fields {
			encodeData(out, f)
		}
	case tag <= tagConstrMidMax-tagConstrMidBase:
		encodeTag(out, tagConstrMidBase+tag)
		encodeHead(out, 4, uint64(len(fields)))
		for _, f := range fields {
			encodeData(out, f)
		}
	default:
		encodeTag(out, tagConstrGeneral)
		encodeHead(out, 4, 2)
		encodeUint(out, tag)
		encodeHead(out, 4, uint64(len(fields)))
		for _, f := range fields {
			encodeData(out, f)
		}
	}
}

// encodeHead writes a CBOR major-type/length head, definite length only.
func encodeHead(out *[]byte, major byte, n uint64) {
	writeHead(out, major, n)
}

func encodeTag(out *[]byte, tag uint64) {
	writeHead(out, 6, tag)
}

func encodeUint(out *[]byte, v uint64) {
	writeHead(out, 0, v)
}

func writeHead(out *[]byte, major byte, n uint64) {
	m := major << 5
	switch {
	case n < 24:
		*out = append(*out, m|byte(n))
	case n <= 0xff:
		*out = append(*out, m|24, byte(n))
	case n <= 0xffff:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(n))
		*out = append(*out, m|25)
		*out = append(*out, buf...)
	case n <= 0xffffffff:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(n))
		*out = append(*out, m|26)
		*out = append(*out, buf...)
	default:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, n)
		*out = append(*out, m|27)
		*out = append(*out, buf...)
	}
}

// encodeBigInt emits a native CBOR integer when it fits, a bignum tag
// otherwise — both required by canonical Data CBOR for arbitrary-precision
// on-chain integers.
func encodeBigInt(out *[]byte, v *big.Int) {
	if v.IsUint64() {
		encodeUint(out, v.Uint64())
		return
	}
	if v.Sign() < 0 && new(big.Int).Neg(v).IsUint64() {
		// major type 1: value encoded is -1-n
		n := new(big.Int).Neg(v)
		n.Sub(n, big.NewInt(1))
		if n.IsUint64() {
			writeHead(out, 1, n.Uint64())
			return
		}
	}
	if v.Sign() >= 0 {
		encodeTag(out, tagPosBignum)
		encodeChunkedBytes(out, v.Bytes())
		return
	}
	encodeTag(out, tagNegBignum)
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	encodeChunkedBytes(out, n.Bytes())
}

// encodeChunkedBytes emits a plain definite-length byte string when it fits
// in one chunk, or an indefinite-length byte string made of dataChunkSize
// chunks per spec §4.D ("64-byte-chunked byte strings for large values").
func encodeChunkedBytes(out *[]byte, b []byte) {
	if len(b) <= dataChunkSize {
		encodeHead(out, 2, uint64(len(b)))
		*out = append(*out, b...)
		return
	}
	*out = append(*out, 0x5f) // major 2, indefinite
	for len(b) > 0 {
		n := len(b)
		if n > dataChunkSize {
			n = dataChunkSize
		}
		encodeHead(out, 2, uint64(n))
		*out = append(*out, b[:n]...)
		b = b[n:]
	}
	*out = append(*out, 0xff)
}

// DecodeDataCBOR decodes a single canonical Data value, failing on trailing
// bytes.
func DecodeDataCBOR(b []byte) (uplc.Data, error) {
	dec := &dataDecoder{buf: b}
	d, err := dec.decode()
	if err != nil {
		return uplc.Data{}, err
	}
	if dec.pos != len(dec.buf) {
		return uplc.Data{}, fmt.Errorf("flat: trailing bytes after Data CBOR")
	}
	return d, nil
}

type dataDecoder struct {
	buf []byte
	pos int
}

func (d *dataDecoder) byte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, fmt.Errorf("flat: Data CBOR: unexpected end of input")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *dataDecoder) readN(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, fmt.Errorf("flat: Data CBOR: unexpected end of input")
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// readHead returns (major type, argument, isIndefinite).
func (d *dataDecoder) readHead() (byte, uint64, bool, error) {
	b, err := d.byte()
	if err != nil {
		return 0, 0, false, err
	}
	major := b >> 5
	info := b & 0x1f
	switch {
	case info < 24:
		return major, uint64(info), false, nil
	case info == 24:
		v, err := d.byte()
		return major, uint64(v), false, err
	case info == 25:
		buf, err := d.readN(2)
		if err != nil {
			return 0, 0, false, err
		}
		return major, uint64(binary.BigEndian.Uint16(buf)), false, nil
	case info == 26:
		buf, err := d.readN(4)
		if err != nil {
			return 0, 0, false, err
		}
		return major, uint64(binary.BigEndian.Uint32(buf)), false, nil
	case info == 27:
		buf, err := d.readN(8)
		if err != nil {
			return 0, 0, false, err
		}
		return major, binary.BigEndian.Uint64(buf), false, nil
	case info == 31:
		return major, 0, true, nil
	default:
		return 0, 0, false, fmt.Errorf("flat: Data CBOR: reserved additional info %d", info)
	}
}

func (d *dataDecoder) decode() (uplc.Data, error) {
	major, arg, indefinite, err := d.readHead()
	if err != nil {
		return uplc.Data{}, err
	}
	switch major {
	case 0:
		return uplc.NewDataI(new(big.Int).SetUint64(arg)), nil
	case 1:
		n := new(big.Int).SetUint64(arg)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return uplc.NewDataI(n), nil
	case 2:
		b, err := d.readByteStringBody(arg, indefinite)
		if err != nil {
			return uplc.Data{}, err
		}
		return uplc.NewDataB(b), nil
	case 4:
		n := int(arg)
		items := make([]uplc.Data, 0, n)
		if indefinite {
			for {
				if d.peekBreak() {
					d.pos++
					break
				}
				item, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				items = append(items, item)
			}
		} else {
			for i := 0; i < n; i++ {
				item, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				items = append(items, item)
			}
		}
		return uplc.NewDataList(items), nil
	case 5:
		n := int(arg)
		pairs := make([]uplc.DataPair, 0, n)
		if indefinite {
			for {
				if d.peekBreak() {
					d.pos++
					break
				}
				k, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				v, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				pairs = append(pairs, uplc.DataPair{Key: k, Value: v})
			}
		} else {
			for i := 0; i < n; i++ {
				k, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				v, err := d.decode()
				if err != nil {
					return uplc.Data{}, err
				}
				pairs = append(pairs, uplc.DataPair{Key: k, Value: v})
			}
		}
		return uplc.NewDataMap(pairs), nil
	case 6:
		return d.decodeTagged(arg)
	default:
		return uplc.Data{}, fmt.Errorf("flat: Data CBOR: unsupported major type %d", major)
	}
}

func (d *dataDecoder) peekBreak() bool {
	return d.pos < len(d.buf) && d.buf[d.pos] == 0xff
}

func (d *dataDecoder) readByteStringBody(arg uint64, indefinite bool) ([]byte, error) {
	if !indefinite {
		return d.readN(int(arg))
	}
	var out []byte
	for {
		if d.peekBreak() {
			d.pos++
			break
		}
		major, n, chunkIndefinite, err := d.readHead()
		if err != nil {
			return nil, err
		}
		if major != 2 || chunkIndefinite {
			return nil, fmt.Errorf("flat: Data CBOR: malformed chunked byte string")
		}
		chunk, err := d.readN(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

func (d *dataDecoder) decodeTagged(tag uint64) (uplc.Data, error) {
	switch {
	case tag == tagPosBignum:
		b, err := d.decodeBytesOnly()
		if err != nil {
			return uplc.Data{}, err
		}
		return uplc.NewDataI(new(big.Int).SetBytes(b)), nil
	case tag == tagNegBignum:
		b, err := d.decodeBytesOnly()
		if err != nil {
			return uplc.Data{}, err
		}
		n := new(big.Int).SetBytes(b)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return uplc.NewDataI(n), nil
	case tag >= tagConstrLowBase && tag <= tagConstrLowMax:
		return d.decodeConstrBody(tag - tagConstrLowBase)
	case tag >= tagConstrMidBase && tag <= tagConstrMidMax:
		return d.decodeConstrBody(tag - tagConstrMidBase)
	case tag == tagConstrGeneral:
		major, n, _, err := d.readHead()
		if err != nil {
			return uplc.Data{}, err
		}
		if major != 4 || n != 2 {
			return uplc.Data{}, fmt.Errorf("flat: Data CBOR: malformed general constructor wrapper")
		}
		idxData, err := d.decode()
		if err != nil {
			return uplc.Data{}, err
		}
		if idxData.Kind() != uplc.DI {
			return uplc.Data{}, fmt.Errorf("flat: Data CBOR: constructor index is not an integer")
		}
		fields, err := d.decodeFieldArray()
		if err != nil {
			return uplc.Data{}, err
		}
		return uplc.NewDataConstr(idxData.IntValue().Uint64(), fields), nil
	default:
		return uplc.Data{}, fmt.Errorf("flat: Data CBOR: unsupported tag %d", tag)
	}
}

func (d *dataDecoder) decodeConstrBody(tag uint64) (uplc.Data, error) {
	fields, err := d.decodeFieldArray()
	if err != nil {
		return uplc.Data{}, err
	}
	return uplc.NewDataConstr(tag, fields), nil
}

func (d *dataDecoder) decodeFieldArray() ([]uplc.Data, error) {
	major, n, indefinite, err := d.readHead()
	if err != nil {
		return nil, err
	}
	if major != 4 {
		return nil, fmt.Errorf("flat: Data CBOR: expected field array")
	}
	var fields []uplc.Data
	if indefinite {
		for {
			if d.peekBreak() {
				d.pos++
				break
			}
			f, err := d.decode()
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	} else {
		fields = make([]uplc.Data, 0, n)
		for i := uint64(0); i < n; i++ {
			f, err := d.decode()
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	}
	return fields, nil
}

func (d *dataDecoder) decodeBytesOnly() ([]byte, error) {
	major, n, indefinite, err := d.readHead()
	if err != nil {
		return nil, err
	}
	if major != 2 {
		return nil, fmt.Errorf("flat: Data CBOR: expected byte string for bignum payload")
	}
	return d.readByteStringBody(n, indefinite)
}
