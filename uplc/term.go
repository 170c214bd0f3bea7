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

// Term is one of the UPLC abstract-syntax shapes of spec §3.1. Terms are
// immutable; optimizer passes build new terms rather than mutate existing
// ones.
type Term interface {
	termNode()
}

// Var is a bound reference. Name is carried for debug printing only; Index
// is the de Bruijn index (>=1) that drives evaluation.
type Var struct {
	Name  string
	Index int
}

// LamAbs is a single-argument abstraction.
type LamAbs struct {
	Name string
	Body Term
}

// Apply is strict application: Fun evaluates first, then Arg.
type Apply struct {
	Fun Term
	Arg Term
}

// Delay suspends Body into a thunk capturing the current environment.
type Delay struct{ Body Term }

// Force forces a thunk (or decrements a partial builtin's force count).
type Force struct{ Body Term }

// Const is a literal constant.
type Const struct{ Value Value }

// BuiltinRef names one entry of the builtin registry by its stable
// identifier; resolution happens at evaluation time against the registry
// supplied to the CEK machine.
type BuiltinRef struct{ Name string }

// ErrorTerm fails immediately whenever evaluated.
type ErrorTerm struct{}

// ConstrTerm evaluates Args strictly left-to-right into a ConstrValue
// tagged Tag. Plutus V3 only.
type ConstrTerm struct {
	Tag  uint64
	Args []Term
}

// CaseTerm evaluates Scrutinee to a ConstrValue with tag t, then applies
// Branches[t] to the Constr's fields in order. Plutus V3 only.
type CaseTerm struct {
	Scrutinee Term
	Branches  []Term
}

func (*Var) termNode()        {}
func (*LamAbs) termNode()     {}
func (*Apply) termNode()      {}
func (*Delay) termNode()      {}
func (*Force) termNode()      {}
func (*Const) termNode()      {}
func (*BuiltinRef) termNode() {}
func (*ErrorTerm) termNode()  {}
func (*ConstrTerm) termNode() {}
func (*CaseTerm) termNode()   {}

// NewApply, NewForce and NewDelay are smart constructors used by the
// optimizer passes so rewrites read as data construction rather than
// repeated struct literals.
func NewApply(fun, arg Term) Term   { return &Apply{Fun: fun, Arg: arg} }
func NewForce(body Term) Term       { return &Force{Body: body} }
func NewDelay(body Term) Term       { return &Delay{Body: body} }
func NewLamAbs(name string, body Term) Term {
	return &LamAbs{Name: name, Body: body}
}
