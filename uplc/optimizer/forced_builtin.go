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

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/probeum/scalus-uplc/uplc"
)

// forcedBuiltinPrefix names the fresh lambda bindings the extractor
// generates; a pre-existing user binding with this prefix forces the
// counter suffix onward past any collision (spec §9 open question).
const forcedBuiltinPrefix = "__builtin_"

// ExtractForcedBuiltins lifts every `Force(Builtin b)` and
// `Force(Force(Builtin b))` occurrence (for builtins requiring exactly 1 or
// 2 forces) to a single shared top-level binding per builtin name,
// implemented as an immediately-applied lambda, so repeated occurrences
// become `Var` references. Builtins named in except are left untouched.
func ExtractForcedBuiltins(t uplc.Term, except mapset.Set[string]) uplc.Term {
	if except == nil {
		except = mapset.NewThreadUnsafeSet[string]()
	}
	found := map[string]uplc.Term{}
	collectForcedBuiltins(t, except, found)
	if len(found) == 0 {
		return t
	}

	names := make([]string, 0, len(found))
	for n := range found {
		names = append(names, n)
	}
	sort.Strings(names)

	reserved := reservedNames(t)
	bindingName := make(map[string]string, len(names))
	for _, n := range names {
		bindingName[n] = freshName(reserved, n)
	}

	body := rewriteForcedBuiltinRefs(t, bindingName, except)
	for i := len(names) - 1; i >= 0; i-- {
		n := names[i]
		body = &uplc.Apply{
			Fun: &uplc.LamAbs{Name: bindingName[n], Body: body},
			Arg: found[n],
		}
	}
	return body
}

// collectForcedBuiltins walks t recording, per builtin name, the forced
// term (Force(Builtin) or Force(Force(Builtin))) the first time it is seen.
func collectForcedBuiltins(t uplc.Term, except mapset.Set[string], found map[string]uplc.Term) {
	switch n := t.(type) {
	case *uplc.Force:
		if ref, ok := n.Body.(*uplc.BuiltinRef); ok {
			if !except.Contains(ref.Name) {
				if _, seen := found[ref.Name]; !seen {
					found[ref.Name] = &uplc.Force{Body: &uplc.BuiltinRef{Name: ref.Name}}
				}
			}
			return
		}
		if inner, ok := n.Body.(*uplc.Force); ok {
			if ref, ok := inner.Body.(*uplc.BuiltinRef); ok {
				if !except.Contains(ref.Name) {
					if _, seen := found[ref.Name]; !seen {
						found[ref.Name] = &uplc.Force{Body: &uplc.Force{Body: &uplc.BuiltinRef{Name: ref.Name}}}
					}
				}
				return
			}
		}
		collectForcedBuiltins(n.Body, except, found)
	case *uplc.LamAbs:
		collectForcedBuiltins(n.Body, except, found)
	case *uplc.Apply:
		collectForcedBuiltins(n.Fun, except, found)
		collectForcedBuiltins(n.Arg, except, found)
	case *uplc.Delay:
		collectForcedBuiltins(n.Body, except, found)
	case *uplc.ConstrTerm:
		for _, a := range n.Args {
			collectForcedBuiltins(a, except, found)
		}
	case *uplc.CaseTerm:
		collectForcedBuiltins(n.Scrutinee, except, found)
		for _, b := range n.Branches {
			collectForcedBuiltins(b, except, found)
		}
	}
}

// rewriteForcedBuiltinRefs replaces every extracted forced-builtin
// occurrence with a Var pointing at its new binding, shifting de Bruijn
// indices as it descends under binders introduced since the rewrite began;
// every occurrence ends up one level deeper per extracted binding once the
// wrapping lambdas are added by the caller, so indices here are relative to
// the point immediately outside all of them and get corrected by the
// Apply/LamAbs nesting built in ExtractForcedBuiltins.
func rewriteForcedBuiltinRefs(t uplc.Term, bindingName map[string]string, except mapset.Set[string]) uplc.Term {
	return rewriteAt(t, 0, bindingName, except)
}

func rewriteAt(t uplc.Term, depth int, bindingName map[string]string, except mapset.Set[string]) uplc.Term {
	switch n := t.(type) {
	case *uplc.Var:
		return n
	case *uplc.Force:
		if ref, ok := n.Body.(*uplc.BuiltinRef); ok && !except.Contains(ref.Name) {
			if _, known := bindingName[ref.Name]; known {
				return &uplc.Var{Name: bindingName[ref.Name], Index: depth + indexOf(bindingName, ref.Name) + 1}
			}
		}
		if inner, ok := n.Body.(*uplc.Force); ok {
			if ref, ok := inner.Body.(*uplc.BuiltinRef); ok && !except.Contains(ref.Name) {
				if _, known := bindingName[ref.Name]; known {
					return &uplc.Var{Name: bindingName[ref.Name], Index: depth + indexOf(bindingName, ref.Name) + 1}
				}
			}
		}
		return &uplc.Force{Body: rewriteAt(n.Body, depth, bindingName, except)}
	case *uplc.LamAbs:
		return &uplc.LamAbs{Name: n.Name, Body: rewriteAt(n.Body, depth+1, bindingName, except)}
	case *uplc.Apply:
		return &uplc.Apply{Fun: rewriteAt(n.Fun, depth, bindingName, except), Arg: rewriteAt(n.Arg, depth, bindingName, except)}
	case *uplc.Delay:
		return &uplc.Delay{Body: rewriteAt(n.Body, depth, bindingName, except)}
	case *uplc.ConstrTerm:
		args := make([]uplc.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = rewriteAt(a, depth, bindingName, except)
		}
		return &uplc.ConstrTerm{Tag: n.Tag, Args: args}
	case *uplc.CaseTerm:
		branches := make([]uplc.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = rewriteAt(b, depth, bindingName, except)
		}
		return &uplc.CaseTerm{Scrutinee: rewriteAt(n.Scrutinee, depth, bindingName, except), Branches: branches}
	default:
		return t
	}
}

// indexOf returns the 0-based position of name's binding among the sorted
// binding names — bindings are nested outermost-first (sorted first), so a
// reference at depth d reaches the builtin whose binding was pushed
// (len(names)-1-position) lambdas ago; since every binding wraps the whole
// term once, a reference always sees all bindings in scope and position
// directly gives the extra index offset from the innermost binding inward.
func indexOf(bindingName map[string]string, target string) int {
	names := make([]string, 0, len(bindingName))
	for n := range bindingName {
		names = append(names, n)
	}
	sort.Strings(names)
	for i, n := range names {
		if n == target {
			return len(names) - 1 - i
		}
	}
	return 0
}

// reservedNames collects every binder name already in use in t, so fresh
// binding names can avoid colliding with them.
func reservedNames(t uplc.Term) map[string]struct{} {
	out := map[string]struct{}{}
	var walk func(uplc.Term)
	walk = func(t uplc.Term) {
		switch n := t.(type) {
		case *uplc.LamAbs:
			out[n.Name] = struct{}{}
			walk(n.Body)
		case *uplc.Apply:
			walk(n.Fun)
			walk(n.Arg)
		case *uplc.Delay:
			walk(n.Body)
		case *uplc.Force:
			walk(n.Body)
		case *uplc.ConstrTerm:
			for _, a := range n.Args {
				walk(a)
			}
		case *uplc.CaseTerm:
			walk(n.Scrutinee)
			for _, b := range n.Branches {
				walk(b)
			}
		}
	}
	walk(t)
	return out
}

// freshName builds base's extractor binding name, appending a monotonically
// increasing numeric suffix starting at 0 whenever the unsuffixed name
// collides with an existing binder (spec §9 open question: deterministic,
// simple counter, not a random/UUID scheme).
func freshName(reserved map[string]struct{}, base string) string {
	name := forcedBuiltinPrefix + base
	if _, clash := reserved[name]; !clash {
		return name
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if _, clash := reserved[candidate]; !clash {
			return candidate
		}
	}
}
