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

// Env is a persistent, singly-linked environment frame. De Bruijn index i
// (1-based) selects the i-th entry counting from the head. Frames are
// shared by reference across closures, thunks, and continuations — a
// captured closure keeps its environment alive without copying it (spec §9).
type Env struct {
	Name   string
	Value  Value
	Parent *Env
}

// Extend returns a new environment with v bound at index 1, leaving e
// untouched (existing closures referencing e remain valid).
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{Name: name, Value: v, Parent: e}
}

// Lookup resolves a 1-based de Bruijn index. A false result means the index
// escaped the environment — a fatal decode-time error the flat decoder must
// have already rejected (spec §3.1 invariant), so callers here may treat it
// as an internal inconsistency.
func (e *Env) Lookup(index int) (Value, bool) {
	cur := e
	for i := 1; i < index; i++ {
		if cur == nil {
			return nil, false
		}
		cur = cur.Parent
	}
	if cur == nil {
		return nil, false
	}
	return cur.Value, true
}
