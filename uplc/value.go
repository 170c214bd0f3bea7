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

// Package uplc holds the Untyped Plutus Core value and term model: the
// closed sum of constants/runtime values (ValueKind), the Term AST, and the
// de Bruijn environment they evaluate against.
package uplc

import (
	"math/big"
	"sync"
)

// ValueKind discriminates the closed value sum. It exists so builtin
// argument checks are a single method call rather than a type switch
// repeated at every call site.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindByteString
	KindString
	KindUnit
	KindBool
	KindData
	KindProtoList
	KindProtoPair
	KindBLSG1
	KindBLSG2
	KindBLSMLResult
	KindClosure
	KindThunk
	KindPartialBuiltin
	KindConstr
)

func (k ValueKind) String() string {
	names := [...]string{
		"integer", "bytestring", "string", "unit", "bool", "data",
		"list", "pair", "bls12_381_G1_element", "bls12_381_G2_element",
		"bls12_381_MlResult", "closure", "thunk", "partialBuiltin", "constr",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Value is any runtime value the CEK machine can produce or consume.
type Value interface {
	Kind() ValueKind
	// MemoryFootprint is the cost-model size of this value, per spec §3.2.
	MemoryFootprint() int64
}

// Builtin is the minimal surface a registry entry (package uplc/builtin)
// must expose to be carried inside a PartialBuiltinValue. Defined here,
// rather than imported, so this package never depends on the registry that
// depends on it.
type Builtin interface {
	Name() string
	ForcesRequired() int
	Arity() int
	// Apply is called once the argument vector is saturated.
	Apply(args []Value) (Value, *EvalError)
}

// ---- Integer ----

type IntegerValue struct{ V *big.Int }

func NewInteger(v *big.Int) IntegerValue { return IntegerValue{V: v} }

func (IntegerValue) Kind() ValueKind { return KindInteger }

func (i IntegerValue) MemoryFootprint() int64 {
	bits := i.V.BitLen()
	if bits == 0 {
		return 1
	}
	return int64((bits + 63) / 64)
}

// ---- ByteString ----

type ByteStringValue struct{ B []byte }

func (ByteStringValue) Kind() ValueKind { return KindByteString }

func (b ByteStringValue) MemoryFootprint() int64 {
	if len(b.B) == 0 {
		return 1
	}
	return int64((len(b.B) + 7) / 8)
}

// ---- String ----

type StringValue struct{ S string }

func (StringValue) Kind() ValueKind { return KindString }

func (s StringValue) MemoryFootprint() int64 {
	n := int64(len([]rune(s.S)))
	if n == 0 {
		return 1
	}
	return n
}

// ---- Unit / Bool ----

type UnitValue struct{}

func (UnitValue) Kind() ValueKind           { return KindUnit }
func (UnitValue) MemoryFootprint() int64    { return 1 }

type BoolValue struct{ B bool }

func (BoolValue) Kind() ValueKind        { return KindBool }
func (BoolValue) MemoryFootprint() int64 { return 1 }

// ---- Data ----

// DataKind discriminates the recursive Data ADT: Constr, Map, List, I, B.
type DataKind int

const (
	DConstr DataKind = iota
	DMap
	DList
	DI
	DB
)

// DataPair is one entry of a Data Map, kept in insertion order — canonical
// CBOR for Data is definite-length and order-preserving (spec §9).
type DataPair struct {
	Key, Value Data
}

// Data is the on-chain structured-value ADT.
type Data struct {
	kind DataKind

	constrTag uint64
	fields    []Data // DConstr

	pairs []DataPair // DMap

	items []Data // DList

	intVal *big.Int // DI

	bytes []byte // DB

	footprintOnce sync.Once
	footprint     int64
}

func NewDataConstr(tag uint64, fields []Data) Data {
	return Data{kind: DConstr, constrTag: tag, fields: fields}
}

func NewDataMap(pairs []DataPair) Data { return Data{kind: DMap, pairs: pairs} }
func NewDataList(items []Data) Data    { return Data{kind: DList, items: items} }
func NewDataI(v *big.Int) Data         { return Data{kind: DI, intVal: v} }
func NewDataB(b []byte) Data           { return Data{kind: DB, bytes: b} }

func (d Data) Kind() DataKind { return d.kind }

func (d Data) ConstrTag() uint64    { return d.constrTag }
func (d Data) ConstrFields() []Data { return d.fields }
func (d Data) MapPairs() []DataPair { return d.pairs }
func (d Data) ListItems() []Data    { return d.items }
func (d Data) IntValue() *big.Int   { return d.intVal }
func (d Data) BytesValue() []byte   { return d.bytes }

// Footprint computes the Data memory footprint, memoizing the result the
// first time it is requested (permitted, not required, by spec §3.2 — safe
// here because Data is immutable once constructed).
func (d *Data) Footprint() int64 {
	d.footprintOnce.Do(func() {
		var sum int64
		switch d.kind {
		case DConstr:
			for i := range d.fields {
				sum += d.fields[i].Footprint()
			}
		case DMap:
			for i := range d.pairs {
				sum += d.pairs[i].Key.Footprint() + d.pairs[i].Value.Footprint()
			}
		case DList:
			for i := range d.items {
				sum += d.items[i].Footprint()
			}
		case DI:
			sum = IntegerValue{V: d.intVal}.MemoryFootprint()
		case DB:
			sum = ByteStringValue{B: d.bytes}.MemoryFootprint()
		}
		d.footprint = 4 + sum
	})
	return d.footprint
}

// DataEqual is structural equality over the Data ADT.
func DataEqual(a, b Data) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case DConstr:
		if a.constrTag != b.constrTag || len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if !DataEqual(a.fields[i], b.fields[i]) {
				return false
			}
		}
		return true
	case DMap:
		if len(a.pairs) != len(b.pairs) {
			return false
		}
		for i := range a.pairs {
			if !DataEqual(a.pairs[i].Key, b.pairs[i].Key) || !DataEqual(a.pairs[i].Value, b.pairs[i].Value) {
				return false
			}
		}
		return true
	case DList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !DataEqual(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case DI:
		return a.intVal.Cmp(b.intVal) == 0
	case DB:
		return bytesEqual(a.bytes, b.bytes)
	}
	return false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type DataValue struct{ D Data }

func (DataValue) Kind() ValueKind           { return KindData }
func (d DataValue) MemoryFootprint() int64  { return d.D.Footprint() }

// ---- Type tags (for ProtoList/ProtoPair structural typing) ----

type BaseType int

const (
	TyInteger BaseType = iota
	TyByteString
	TyString
	TyUnit
	TyBool
	TyData
	TyList
	TyPair
	TyG1
	TyG2
	TyMLResult
)

// TypeTag is the structural type remembered by ProtoList/ProtoPair; List and
// Pair carry type arguments.
type TypeTag struct {
	Base BaseType
	Args []TypeTag
}

func (t TypeTag) Equal(o TypeTag) bool {
	if t.Base != o.Base || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// ---- ProtoList / ProtoPair ----

type ProtoListValue struct {
	ElemType TypeTag
	Items    []Value
}

func (ProtoListValue) Kind() ValueKind { return KindProtoList }

func (p ProtoListValue) MemoryFootprint() int64 {
	var sum int64 = 1
	for _, v := range p.Items {
		sum += v.MemoryFootprint()
	}
	return sum
}

type ProtoPairValue struct {
	FstType, SndType TypeTag
	Fst, Snd         Value
}

func (ProtoPairValue) Kind() ValueKind { return KindProtoPair }

func (p ProtoPairValue) MemoryFootprint() int64 {
	return 1 + p.Fst.MemoryFootprint() + p.Snd.MemoryFootprint()
}

// ---- Constr (Plutus V3) ----

type ConstrValue struct {
	Tag    uint64
	Fields []Value
}

func (ConstrValue) Kind() ValueKind { return KindConstr }

func (c ConstrValue) MemoryFootprint() int64 {
	var sum int64 = 1
	for _, v := range c.Fields {
		sum += v.MemoryFootprint()
	}
	return sum
}

// ---- Closures / thunks / partial builtins ----
//
// These are values but are never observed by any builtin: equality and
// serialization are undefined for them (spec §3.2, §9). Their memory
// footprint is a constant 1, matching the spec's "not used by pure-builtin
// costs" note.

type ClosureValue struct {
	Env   *Env
	Param string
	Body  Term
}

func (ClosureValue) Kind() ValueKind        { return KindClosure }
func (ClosureValue) MemoryFootprint() int64 { return 1 }

type ThunkValue struct {
	Env  *Env
	Body Term
}

func (ThunkValue) Kind() ValueKind        { return KindThunk }
func (ThunkValue) MemoryFootprint() int64 { return 1 }

type PartialBuiltinValue struct {
	Fn              Builtin
	Args            []Value
	RemainingForces int
}

func (PartialBuiltinValue) Kind() ValueKind        { return KindPartialBuiltin }
func (PartialBuiltinValue) MemoryFootprint() int64 { return 1 }

// Saturated reports whether the partial application has collected every
// argument the builtin's arity demands.
func (p PartialBuiltinValue) Saturated() bool {
	return len(p.Args) == p.Fn.Arity()
}

// ---- Equality over the kinds the spec defines it for ----

// ValuesEqual implements structural equality for Integer, ByteString,
// String, Bool, Unit, ProtoList, ProtoPair and Constr. It is never called
// with Closure/Thunk/PartialBuiltin operands — no builtin inspects them.
func ValuesEqual(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case IntegerValue:
		return av.V.Cmp(b.(IntegerValue).V) == 0
	case ByteStringValue:
		return bytesEqual(av.B, b.(ByteStringValue).B)
	case StringValue:
		return av.S == b.(StringValue).S
	case UnitValue:
		return true
	case BoolValue:
		return av.B == b.(BoolValue).B
	case DataValue:
		return DataEqual(av.D, b.(DataValue).D)
	case ProtoListValue:
		bv := b.(ProtoListValue)
		if !av.ElemType.Equal(bv.ElemType) || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !ValuesEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case ProtoPairValue:
		bv := b.(ProtoPairValue)
		return ValuesEqual(av.Fst, bv.Fst) && ValuesEqual(av.Snd, bv.Snd)
	case ConstrValue:
		bv := b.(ConstrValue)
		if av.Tag != bv.Tag || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if !ValuesEqual(av.Fields[i], bv.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
