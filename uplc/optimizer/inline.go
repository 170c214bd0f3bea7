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

package optimizer

import "github.com/probeum/scalus-uplc/uplc"

// maxInlineConstBits is the flat-encoded bit-size ceiling below which a
// Const is always safe to inline, per the default inlining policy (spec
// §4.G.2).
const maxInlineConstBits = 64

// Inline runs one bottom-up pass of beta-reduction / dead-code elimination
// over t: every `Apply(LamAbs(x, body), arg)` is either eliminated (arg
// unused and pure), substituted (policy accepts inlining arg), or left
// alone. `Force(Delay(t))` pairs collapse unconditionally, and identity
// lambdas are eliminated at their application site.
func Inline(t uplc.Term) uplc.Term {
	return inlineRewrite(t)
}

func inlineRewrite(t uplc.Term) uplc.Term {
	switch n := t.(type) {
	case *uplc.Apply:
		fun := inlineRewrite(n.Fun)
		arg := inlineRewrite(n.Arg)
		if lam, ok := fun.(*uplc.LamAbs); ok {
			if isIdentity(lam) {
				return arg
			}
			count := uplc.CountOccurrences(lam.Body, 0)
			if (count == 0 && isPure(arg)) || shouldInline(count, arg) {
				return inlineRewrite(uplc.Substitute(lam.Body, arg))
			}
		}
		return &uplc.Apply{Fun: fun, Arg: arg}
	case *uplc.LamAbs:
		return &uplc.LamAbs{Name: n.Name, Body: inlineRewrite(n.Body)}
	case *uplc.Delay:
		return &uplc.Delay{Body: inlineRewrite(n.Body)}
	case *uplc.Force:
		body := inlineRewrite(n.Body)
		if d, ok := body.(*uplc.Delay); ok {
			return d.Body
		}
		return &uplc.Force{Body: body}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = inlineRewrite(a)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = inlineRewrite(b)
		}
		return &uplc.CaseTerm{Scrutinee: inlineRewrite(n.Scrutinee), Branches: branches}
	default:
		return t
	}
}

// isIdentity reports whether lam is exactly λx.x (de Bruijn index 1
// referencing its own binder).
func isIdentity(lam *uplc.LamAbs) bool {
	v, ok := lam.Body.(*uplc.Var)
	return ok && v.Index == 1
}

// shouldInline is the default inlining-policy predicate: a Var or Builtin is
// always safe regardless of occurrence count; a Const is safe when it is
// small (≤64 flat-encoded bits, approximated here by its value-level memory
// footprint) or occurs exactly once.
func shouldInline(count int, arg uplc.Term) bool {
	if count == 0 {
		return false
	}
	switch a := arg.(type) {
	case *uplc.Var, *uplc.BuiltinRef:
		return true
	case *uplc.Const:
		return count == 1 || a.Value.MemoryFootprint()*8 <= maxInlineConstBits
	default:
		return false
	}
}
