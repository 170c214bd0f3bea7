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

// StrictIf rewrites `Force(ifThenElse cond (Delay t) (Delay e))` to the
// strict `ifThenElse cond t e` wherever both branches are pure, saving two
// delay/force step pairs under the CEK (spec §4.G.4).
func StrictIf(t uplc.Term) uplc.Term {
	return strictIfRewrite(t)
}

func strictIfRewrite(t uplc.Term) uplc.Term {
	switch n := t.(type) {
	case *uplc.Force:
		body := strictIfRewrite(n.Body)
		if cond, thenTerm, elseTerm, ok := matchLazyIf(body); ok {
			if isPure(thenTerm) && isPure(elseTerm) && (!isTrivial(thenTerm) || !isTrivial(elseTerm)) {
				return applyIfThenElse(cond, thenTerm, elseTerm)
			}
		}
		return &uplc.Force{Body: body}
	case *uplc.LamAbs:
		return &uplc.LamAbs{Name: n.Name, Body: strictIfRewrite(n.Body)}
	case *uplc.Apply:
		return &uplc.Apply{Fun: strictIfRewrite(n.Fun), Arg: strictIfRewrite(n.Arg)}
	case *uplc.Delay:
		return &uplc.Delay{Body: strictIfRewrite(n.Body)}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = strictIfRewrite(a)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = strictIfRewrite(b)
		}
		return &uplc.CaseTerm{Scrutinee: strictIfRewrite(n.Scrutinee), Branches: branches}
	default:
		return t
	}
}

// matchLazyIf recognizes `ifThenElse cond (Delay t) (Delay e)` — a
// one-force builtin application forced once at the Force site above it —
// and returns its three logical arguments.
func matchLazyIf(t uplc.Term) (cond, then, els uplc.Term, ok bool) {
	fn, args := flattenApply(t)
	ref, isRef := fn.(*uplc.BuiltinRef)
	if !isRef || ref.Name != "ifThenElse" || len(args) != 3 {
		return nil, nil, nil, false
	}
	thenDelay, ok1 := args[1].(*uplc.Delay)
	elseDelay, ok2 := args[2].(*uplc.Delay)
	if !ok1 || !ok2 {
		return nil, nil, nil, false
	}
	return args[0], thenDelay.Body, elseDelay.Body, true
}

// applyIfThenElse rebuilds the strict three-argument ifThenElse
// application, forcing it once (ifThenElse still declares one type force in
// the registry).
func applyIfThenElse(cond, then, els uplc.Term) uplc.Term {
	app := uplc.NewApply(uplc.NewApply(uplc.NewApply(&uplc.Force{Body: &uplc.BuiltinRef{Name: "ifThenElse"}}, cond), then), els)
	return app
}

// isTrivial reports whether t is cheap enough that collapsing the lazy
// idiom around it saves nothing observable — a bare Const or Var. The
// strict-if rewrite still fires as long as at least one branch is
// non-trivial.
func isTrivial(t uplc.Term) bool {
	switch t.(type) {
	case *uplc.Const, *uplc.Var:
		return true
	default:
		return false
	}
}
