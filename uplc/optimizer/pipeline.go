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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

// Pass is the common shape every rewrite in this package satisfies, letting
// the pipeline compose them uniformly and a test harness iterate "apply
// every registered pass, assert idempotence" without a type switch per
// pass.
type Pass interface {
	Apply(uplc.Term) uplc.Term
}

type passFunc func(uplc.Term) uplc.Term

func (f passFunc) Apply(t uplc.Term) uplc.Term { return f(t) }

// EtaReducePass, InlinePass and StrictIfPass adapt the package's top-level
// rewrite functions to Pass.
var (
	EtaReducePass passFunc = EtaReduce
	InlinePass    passFunc = Inline
	StrictIfPass  passFunc = StrictIf
)

// forcedBuiltinPass closes ExtractForcedBuiltins over a fixed exception set
// so it satisfies Pass.
type forcedBuiltinPass struct {
	except mapset.Set[string]
}

func (p forcedBuiltinPass) Apply(t uplc.Term) uplc.Term {
	return ExtractForcedBuiltins(t, p.except)
}

// compactCaseConstrPass adapts CompactCaseConstr to Pass.
type compactCaseConstrPass struct{}

func (compactCaseConstrPass) Apply(t uplc.Term) uplc.Term { return CompactCaseConstr(t) }

// inlinePassRounds is how many (eta-reduce, inline) rounds the V1/V2/V3
// pipelines run before the one-shot passes (spec §4.G.6).
const inlinePassRounds = 3

// Options configures a pipeline run.
type Options struct {
	// ForcedBuiltinExceptions is the configurable exception set the forced-
	// builtin extractor leaves untouched; nil means no exceptions.
	ForcedBuiltinExceptions mapset.Set[string]
}

// Pipeline returns the fixed, version-gated ordered list of passes: three
// rounds of (eta-reduce, inline), then strict-if, then forced-builtin
// extraction, with V3 and above appending case/constr compaction as the
// final pass.
func Pipeline(v cost.Version, opts Options) []Pass {
	except := opts.ForcedBuiltinExceptions
	if except == nil {
		except = mapset.NewThreadUnsafeSet[string]()
	}

	var passes []Pass
	for i := 0; i < inlinePassRounds; i++ {
		passes = append(passes, EtaReducePass, InlinePass)
	}
	passes = append(passes, StrictIfPass, forcedBuiltinPass{except: except})
	if v >= cost.PlutusV3 {
		passes = append(passes, compactCaseConstrPass{})
	}
	return passes
}

// Run applies every pass in order, threading the rewritten term through.
func Run(t uplc.Term, v cost.Version, opts Options) uplc.Term {
	for _, p := range Pipeline(v, opts) {
		t = p.Apply(t)
	}
	return t
}
