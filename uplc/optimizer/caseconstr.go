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

// minCompactionArgs is the arity threshold above which Constr+Case beats n
// Apply step costs under the current cost table (spec §4.G.5: n >= 3).
const minCompactionArgs = 3

// CompactCaseConstr rewrites n-ary application chains
// `Apply(Apply(...Apply(f, a1), a2)..., an)` with n > 2 into
// `Case(Constr(0, [a1,...,an]), [f])`. Plutus V3 only — callers must only
// run this pass in the V3 pipeline.
func CompactCaseConstr(t uplc.Term) uplc.Term {
	return compactRewrite(t)
}

func compactRewrite(t uplc.Term) uplc.Term {
	switch n := t.(type) {
	case *uplc.Apply:
		fn, args := flattenApply(n)
		if len(args) >= minCompactionArgs {
			rFn := compactRewrite(fn)
			rArgs := make([]uplc.Term, len(args))
			for i, a := range args {
				rArgs[i] = compactRewrite(a)
			}
			return &uplc.CaseTerm{
				Scrutinee: &uplc.ConstrTerm{Tag: 0, Args: rArgs},
				Branches:  []uplc.Term{rFn},
			}
		}
		return &uplc.Apply{Fun: compactRewrite(n.Fun), Arg: compactRewrite(n.Arg)}
	case *uplc.LamAbs:
		return &uplc.LamAbs{Name: n.Name, Body: compactRewrite(n.Body)}
	case *uplc.Delay:
		return &uplc.Delay{Body: compactRewrite(n.Body)}
	case *uplc.Force:
		return &uplc.Force{Body: compactRewrite(n.Body)}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = compactRewrite(a)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = compactRewrite(b)
		}
		return &uplc.CaseTerm{Scrutinee: compactRewrite(n.Scrutinee), Branches: branches}
	default:
		return t
	}
}
