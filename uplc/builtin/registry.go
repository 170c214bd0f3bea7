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

// Package builtin is the UPLC builtin registry (spec §4.D): for every
// builtin, its arity, the number of type-variable forces it requires
// before it accepts an argument, and a total evaluator closure over
// pre-evaluated argument values.
package builtin

import (
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// EvalFunc is a total function from a saturated argument vector to either a
// value or a failure — never a bare panic, per spec §8.1 "builtin totality".
type EvalFunc func(args []uplc.Value) (uplc.Value, *uplc.EvalError)

// Entry is one builtin registry row.
type Entry struct {
	name       string
	minVersion cost.Version
	forces     int
	arity      int
	eval       EvalFunc
}

func (e *Entry) Name() string         { return e.name }
func (e *Entry) ForcesRequired() int  { return e.forces }
func (e *Entry) Arity() int           { return e.arity }

// Apply runs the evaluator closure, wrapping the builtin name onto any
// failure so callers can report which builtin raised it.
func (e *Entry) Apply(args []uplc.Value) (uplc.Value, *uplc.EvalError) {
	v, err := e.eval(args)
	if err != nil && err.BuiltinName == "" {
		err.BuiltinName = e.name
	}
	return v, err
}

// Registry is the full set of builtins available at a given Plutus version.
type Registry struct {
	byName map[string]*Entry
}

// NewRegistry builds the registry gated to every builtin introduced at or
// before version v (spec §4.D addition: "a Version gate on the registry").
//
// consByteStringMod256 resolves the spec §9 open question on
// consByteString: true selects the post-Conway "byte argument taken modulo
// 256" semantics, false the earlier "values >=256 fail" semantics. Callers
// must pass the value implied by the target protocol version — this
// package does not guess it.
func NewRegistry(v cost.Version, consByteStringMod256 bool) *Registry {
	r := &Registry{byName: make(map[string]*Entry)}
	for _, e := range allEntries(consByteStringMod256) {
		if e.minVersion <= v {
			entry := e
			r.byName[entry.name] = &entry
		}
	}
	return r
}

// Lookup resolves a builtin by its stable name. A false result means the
// name is unknown at this registry's version — the Builtin(fn) term case
// must treat that as a DecodeError, not a panic.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// AllNames returns every builtin name in the registry's fixed construction
// order (integer, bytestring, string, crypto, data, list, pair, control,
// bls, bitops families, each in the order their family function lists
// them) — this is the canonical tag order the flat encoding's builtin index
// assigns by position, so callers must pass it to
// flat.RegisterBuiltinOrder unchanged.
func AllNames(consByteStringMod256 bool) []string {
	entries := allEntries(consByteStringMod256)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func allEntries(consByteStringMod256 bool) []Entry {
	var all []Entry
	all = append(all, integerEntries()...)
	all = append(all, byteStringEntries(consByteStringMod256)...)
	all = append(all, stringEntries()...)
	all = append(all, cryptoEntries()...)
	all = append(all, dataEntries()...)
	all = append(all, listEntries()...)
	all = append(all, pairEntries()...)
	all = append(all, controlEntries()...)
	all = append(all, blsEntries()...)
	all = append(all, bitOpEntries()...)
	return all
}
