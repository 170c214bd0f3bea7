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

// FreeVarSet is the set of de Bruijn depths, measured from the term's own
// root, that escape it. Depth 0 is the term's first enclosing binder.
type FreeVarSet map[int]struct{}

func shift(s FreeVarSet, delta int) FreeVarSet {
	out := make(FreeVarSet, len(s))
	for d := range s {
		nd := d + delta
		if nd >= 0 {
			out[nd] = struct{}{}
		}
	}
	return out
}

func union(a, b FreeVarSet) FreeVarSet {
	out := make(FreeVarSet, len(a)+len(b))
	for d := range a {
		out[d] = struct{}{}
	}
	for d := range b {
		out[d] = struct{}{}
	}
	return out
}

// FreeVars computes the set of free-variable depths of t, used by the
// eta-reducer's side condition (via IsFreeAtDepth0).
func FreeVars(t Term) FreeVarSet {
	switch n := t.(type) {
	case *Var:
		return FreeVarSet{n.Index - 1: {}}
	case *LamAbs:
		return shift(FreeVars(n.Body), -1)
	case *Apply:
		return union(FreeVars(n.Fun), FreeVars(n.Arg))
	case *Delay:
		return FreeVars(n.Body)
	case *Force:
		return FreeVars(n.Body)
	case *Const, *BuiltinRef, *ErrorTerm:
		return FreeVarSet{}
	case *ConstrTerm:
		out := FreeVarSet{}
		for _, a := range n.Args {
			out = union(out, FreeVars(a))
		}
		return out
	case *CaseTerm:
		out := FreeVars(n.Scrutinee)
		for _, b := range n.Branches {
			out = union(out, FreeVars(b))
		}
		return out
	}
	return FreeVarSet{}
}

// IsFreeAtDepth0 reports whether t has a free occurrence of the variable
// bound by its immediately enclosing binder (depth 0).
func IsFreeAtDepth0(t Term) bool {
	_, ok := FreeVars(t)[0]
	return ok
}

// TermEqual is de-Bruijn-structural equality, used by pass-idempotence
// tests (K(K(T)) == K(T) as terms).
func TermEqual(a, b Term) bool {
	switch av := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.Index == bv.Index
	case *LamAbs:
		bv, ok := b.(*LamAbs)
		return ok && TermEqual(av.Body, bv.Body)
	case *Apply:
		bv, ok := b.(*Apply)
		return ok && TermEqual(av.Fun, bv.Fun) && TermEqual(av.Arg, bv.Arg)
	case *Delay:
		bv, ok := b.(*Delay)
		return ok && TermEqual(av.Body, bv.Body)
	case *Force:
		bv, ok := b.(*Force)
		return ok && TermEqual(av.Body, bv.Body)
	case *Const:
		bv, ok := b.(*Const)
		return ok && ValuesEqual(av.Value, bv.Value)
	case *BuiltinRef:
		bv, ok := b.(*BuiltinRef)
		return ok && av.Name == bv.Name
	case *ErrorTerm:
		_, ok := b.(*ErrorTerm)
		return ok
	case *ConstrTerm:
		bv, ok := b.(*ConstrTerm)
		if !ok || av.Tag != bv.Tag || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !TermEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *CaseTerm:
		bv, ok := b.(*CaseTerm)
		if !ok || !TermEqual(av.Scrutinee, bv.Scrutinee) || len(av.Branches) != len(bv.Branches) {
			return false
		}
		for i := range av.Branches {
			if !TermEqual(av.Branches[i], bv.Branches[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// CountOccurrences counts free occurrences of the variable bound by t's
// immediately enclosing binder (depth 0) up to the first shadowing binder —
// used by the inliner to decide dead-code elimination vs. substitution.
func CountOccurrences(t Term, depth int) int {
	switch n := t.(type) {
	case *Var:
		if n.Index-1 == depth {
			return 1
		}
		return 0
	case *LamAbs:
		return CountOccurrences(n.Body, depth+1)
	case *Apply:
		return CountOccurrences(n.Fun, depth) + CountOccurrences(n.Arg, depth)
	case *Delay:
		return CountOccurrences(n.Body, depth)
	case *Force:
		return CountOccurrences(n.Body, depth)
	case *ConstrTerm:
		sum := 0
		for _, a := range n.Args {
			sum += CountOccurrences(a, depth)
		}
		return sum
	case *CaseTerm:
		sum := CountOccurrences(n.Scrutinee, depth)
		for _, b := range n.Branches {
			sum += CountOccurrences(b, depth)
		}
		return sum
	}
	return 0
}

// shiftFreeIndices adds delta to every free (>cutoff) de Bruijn index in t.
// Used when a term is moved under (shiftFreeIndices(t,1,0)) or out of
// (delta=-1) a binder during substitution.
func shiftFreeIndices(t Term, delta, cutoff int) Term {
	switch n := t.(type) {
	case *Var:
		if n.Index > cutoff {
			return &Var{Name: n.Name, Index: n.Index + delta}
		}
		return n
	case *LamAbs:
		return &LamAbs{Name: n.Name, Body: shiftFreeIndices(n.Body, delta, cutoff+1)}
	case *Apply:
		return &Apply{Fun: shiftFreeIndices(n.Fun, delta, cutoff), Arg: shiftFreeIndices(n.Arg, delta, cutoff)}
	case *Delay:
		return &Delay{Body: shiftFreeIndices(n.Body, delta, cutoff)}
	case *Force:
		return &Force{Body: shiftFreeIndices(n.Body, delta, cutoff)}
	case *ConstrTerm:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = shiftFreeIndices(a, delta, cutoff)
		}
		return &ConstrTerm{Tag: n.Tag, Args: args}
	case *CaseTerm:
		branches := make([]Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = shiftFreeIndices(b, delta, cutoff+0)
		}
		return &CaseTerm{Scrutinee: shiftFreeIndices(n.Scrutinee, delta, cutoff), Branches: branches}
	default:
		return t
	}
}

// Substitute replaces the variable bound at de Bruijn depth 0 of body with
// replacement, capture-avoiding: any binder in body whose name would let a
// free variable of replacement be captured is conceptually fine here because
// capture-avoidance is purely structural under de Bruijn indices — the
// index arithmetic below is exactly what prevents capture, so no renaming
// pass is needed at this layer (binder names are carried for display/debug
// only, and substitution leaves them as they are).
func Substitute(body Term, replacement Term) Term {
	return substAt(body, 0, replacement)
}

func substAt(t Term, depth int, repl Term) Term {
	switch n := t.(type) {
	case *Var:
		idx := n.Index - 1
		switch {
		case idx == depth:
			return shiftFreeIndices(repl, depth, 0)
		case idx > depth:
			return &Var{Name: n.Name, Index: n.Index - 1}
		default:
			return n
		}
	case *LamAbs:
		return &LamAbs{Name: n.Name, Body: substAt(n.Body, depth+1, repl)}
	case *Apply:
		return &Apply{Fun: substAt(n.Fun, depth, repl), Arg: substAt(n.Arg, depth, repl)}
	case *Delay:
		return &Delay{Body: substAt(n.Body, depth, repl)}
	case *Force:
		return &Force{Body: substAt(n.Body, depth, repl)}
	case *ConstrTerm:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = substAt(a, depth, repl)
		}
		return &ConstrTerm{Tag: n.Tag, Args: args}
	case *CaseTerm:
		branches := make([]Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = substAt(b, depth, repl)
		}
		return &CaseTerm{Scrutinee: substAt(n.Scrutinee, depth, repl), Branches: branches}
	default:
		return t
	}
}
