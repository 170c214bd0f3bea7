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

// Package cek is the CEK abstract machine (spec §4.E): Compute/Return/Halt
// states driven by an explicit kontinuation stack, never the host call
// stack, so evaluation depth is bounded only by heap, not by Go's goroutine
// stack.
package cek

import (
	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/builtin"
	"github.com/probeum/scalus-uplc/uplc/cost"
	"github.com/probeum/scalus-uplc/uplc/trace"
)

// frameKind discriminates the kontinuation stack's four frame kinds; a
// frCaseFields frame's marker further tells apart the Constr, Case and
// apply-fields sequencing shapes, so multi-argument application is chained
// without recursing into Go's stack.
type frameKind int

const (
	frApplyArg frameKind = iota
	frApplyFn
	frForce
	frCaseFields
)

// kont is one link of the kontinuation stack.
type kont struct {
	kind frameKind
	next *kont

	// frApplyArg
	env     *uplc.Env
	argTerm uplc.Term

	// frApplyFn
	fn uplc.Value

	// frCaseFields: marker holds one of constrMarker/caseMarker/
	// applyFieldsMarker, distinguishing which of the three sequencing
	// shapes this frame is mid-way through.
	fields []uplc.Value
	idx    int
	marker interface{}
}

// Result is what Run produces: either a final value, or a failure, always
// paired with the spend tally and the trace log (spec §6.3).
type Result struct {
	Value        uplc.Value
	Err          *uplc.EvalError
	Budget       cost.ExUnits
	CostByCat    map[cost.Category]cost.ExUnits
	TraceLog     []string
}

// Machine is one evaluation run's state. It owns a Spender and a trace
// Logger exclusively — per spec §5 these must never be shared across
// concurrent evaluations.
type Machine struct {
	registry *builtin.Registry
	params   cost.MachineParams
	spender  *cost.Spender
	trace    *trace.Logger
}

// New builds a Machine for one evaluation against the given registry and
// machine parameters.
func New(registry *builtin.Registry, params cost.MachineParams) *Machine {
	return &Machine{
		registry: registry,
		params:   params,
		spender:  cost.NewSpender(params.BudgetLimits),
		trace:    trace.New(),
	}
}

// Run evaluates term to a final value or failure under an empty environment.
func (m *Machine) Run(term uplc.Term) Result {
	if overrun := m.charge(uplc.CatStartup); overrun != nil {
		return m.failResult(budgetErr(overrun))
	}

	mode := modeCompute
	var curTerm uplc.Term = term
	var curEnv *uplc.Env
	var curValue uplc.Value
	var k *kont
	var failure *uplc.EvalError

	for {
		switch mode {
		case modeCompute:
			curValue, curTerm, curEnv, failure = m.step(curTerm, curEnv, &k)
			if failure != nil {
				return m.failResult(failure)
			}
			if curTerm == nil {
				mode = modeReturn
			}
		case modeReturn:
			if k == nil {
				return m.okResult(curValue)
			}
			curValue, curTerm, curEnv, k, failure = m.resume(curValue, k)
			if failure != nil {
				return m.failResult(failure)
			}
			if curTerm != nil {
				mode = modeCompute
			}
		}
	}
}

const (
	modeCompute = iota
	modeReturn
)

// step executes one Compute(term, env, κ) transition. On success it either
// returns a value (curTerm == nil, ready for Return) or descends into a new
// (term, env) to compute, possibly after pushing frames onto *kp.
func (m *Machine) step(term uplc.Term, env *uplc.Env, kp **kont) (uplc.Value, uplc.Term, *uplc.Env, *uplc.EvalError) {
	switch t := term.(type) {
	case *uplc.Var:
		if overrun := m.charge(uplc.CatVar); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		v, ok := env.Lookup(t.Index)
		if !ok {
			return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatVar, "unbound variable index %d", t.Index)
		}
		return v, nil, nil, nil

	case *uplc.LamAbs:
		if overrun := m.charge(uplc.CatLamAbs); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		return uplc.ClosureValue{Env: env, Param: t.Name, Body: t.Body}, nil, nil, nil

	case *uplc.Apply:
		if overrun := m.charge(uplc.CatApply); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		*kp = &kont{kind: frApplyArg, env: env, argTerm: t.Arg, next: *kp}
		return nil, t.Fun, env, nil

	case *uplc.Delay:
		if overrun := m.charge(uplc.CatDelay); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		return uplc.ThunkValue{Env: env, Body: t.Body}, nil, nil, nil

	case *uplc.Force:
		if overrun := m.charge(uplc.CatForce); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		*kp = &kont{kind: frForce, next: *kp}
		return nil, t.Body, env, nil

	case *uplc.Const:
		if overrun := m.charge(uplc.CatConst); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		return t.Value, nil, nil, nil

	case *uplc.BuiltinRef:
		if overrun := m.charge(uplc.CatBuiltin); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		entry, ok := m.registry.Lookup(t.Name)
		if !ok {
			return nil, nil, nil, uplc.NewDecodeError(uplc.CatBuiltin, "unknown builtin %q", t.Name)
		}
		return uplc.PartialBuiltinValue{Fn: entry, RemainingForces: entry.ForcesRequired()}, nil, nil, nil

	case *uplc.ErrorTerm:
		return nil, nil, nil, uplc.NewUserError()

	case *uplc.ConstrTerm:
		if overrun := m.charge(uplc.CatConstr); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		if len(t.Args) == 0 {
			return uplc.ConstrValue{Tag: t.Tag}, nil, nil, nil
		}
		*kp = &kont{kind: frCaseFields, env: env, fields: make([]uplc.Value, 0, len(t.Args)), idx: 0, next: *kp}
		// constrFields reuses the applyFields shape to sequence strict
		// left-to-right evaluation of Args into a ConstrValue; see resume.
		(*kp).marker = constrMarker{tag: t.Tag, remaining: t.Args[1:]}
		return nil, t.Args[0], env, nil

	case *uplc.CaseTerm:
		if overrun := m.charge(uplc.CatCase); overrun != nil {
			return nil, nil, nil, budgetErr(overrun)
		}
		*kp = &kont{kind: frCaseFields, env: env, fields: nil, idx: -1, next: *kp}
		(*kp).marker = caseMarker{branches: t.Branches}
		return nil, t.Scrutinee, env, nil

	default:
		return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatStartup, "unknown term node %T", term)
	}
}

// constrMarker/caseMarker are carried in a frCaseFields frame's marker slot
// to distinguish "accumulating Constr args" from "dispatching a Case"
// without a separate frame kind for each — both need to sequence strict
// evaluation.
type constrMarker struct {
	tag       uint64
	remaining []uplc.Term
}

type caseMarker struct {
	branches []uplc.Term
}

// resume executes one Return(value, κ) transition against the top frame.
func (m *Machine) resume(v uplc.Value, k *kont) (uplc.Value, uplc.Term, *uplc.Env, *kont, *uplc.EvalError) {
	switch k.kind {
	case frApplyArg:
		next := &kont{kind: frApplyFn, fn: v, next: k.next}
		return nil, k.argTerm, k.env, next, nil

	case frApplyFn:
		rv, rt, re, err := m.applyValue(k.fn, v)
		return rv, rt, re, k.next, err

	case frForce:
		rv, rt, re, err := m.forceValue(v)
		return rv, rt, re, k.next, err

	case frCaseFields:
		switch marker := k.marker.(type) {
		case constrMarker:
			fields := append(k.fields, v)
			if len(marker.remaining) == 0 {
				return uplc.ConstrValue{Tag: marker.tag, Fields: fields}, nil, nil, k.next, nil
			}
			next := &kont{kind: frCaseFields, env: k.env, fields: fields, next: k.next}
			next.marker = constrMarker{tag: marker.tag, remaining: marker.remaining[1:]}
			return nil, marker.remaining[0], k.env, next, nil

		case caseMarker:
			cv, ok := v.(uplc.ConstrValue)
			if !ok {
				return nil, nil, nil, nil, uplc.NewTypeMismatch(uplc.CatCase, "case: scrutinee is not a Constr")
			}
			if int(cv.Tag) >= len(marker.branches) {
				return nil, nil, nil, nil, uplc.NewMissingBranch(cv.Tag, len(marker.branches))
			}
			branch := marker.branches[cv.Tag]
			if len(cv.Fields) == 0 {
				return nil, branch, k.env, k.next, nil
			}
			next := &kont{kind: frCaseFields, env: k.env, next: k.next}
			next.marker = applyFieldsMarker{fields: cv.Fields, idx: 0}
			return nil, branch, k.env, next, nil

		case applyFieldsMarker:
			rv, rt, re, err := m.applyValue(v, marker.fields[marker.idx])
			if err != nil {
				return nil, nil, nil, nil, err
			}
			if marker.idx+1 == len(marker.fields) {
				return rv, rt, re, k.next, nil
			}
			next := &kont{kind: frCaseFields, next: k.next}
			next.marker = applyFieldsMarker{fields: marker.fields, idx: marker.idx + 1}
			if rt != nil {
				// rv is nil; the applied value is itself a further compute —
				// park the remaining-fields continuation under it.
				return nil, rt, re, next, nil
			}
			// rv is already a value (e.g. a saturated builtin fired
			// immediately); feed it straight back into Return against the
			// remaining-fields frame.
			return m.resume(rv, next)

		default:
			return nil, nil, nil, nil, uplc.NewTypeMismatch(uplc.CatStartup, "internal: malformed frCaseFields frame")
		}

	default:
		return nil, nil, nil, nil, uplc.NewTypeMismatch(uplc.CatStartup, "internal: unknown kontinuation frame")
	}
}

// applyFieldsMarker sequences applying a Constr's fields, in order, to a
// Case branch's function value — it is its own marker because, unlike
// constrMarker, each step must *apply* rather than merely accumulate.
type applyFieldsMarker struct {
	fields []uplc.Value
	idx    int
}

// applyValue implements function application against the Apply step rule:
// ClosureValue descends into its body; PartialBuiltinValue accumulates an
// argument and fires once saturated and fully forced.
func (m *Machine) applyValue(fn uplc.Value, arg uplc.Value) (uplc.Value, uplc.Term, *uplc.Env, *uplc.EvalError) {
	switch f := fn.(type) {
	case uplc.ClosureValue:
		return nil, f.Body, f.Env.Extend(f.Param, arg), nil
	case uplc.PartialBuiltinValue:
		if f.RemainingForces > 0 {
			return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatApply, "builtin %s: argument supplied before required force", f.Fn.Name())
		}
		args := append(append([]uplc.Value(nil), f.Args...), arg)
		if len(args) == f.Fn.Arity() {
			if overrun := m.chargeBuiltinApp(f.Fn, args); overrun != nil {
				return nil, nil, nil, budgetErr(overrun)
			}
			v, err := m.applyBuiltin(f.Fn, args)
			return v, nil, nil, err
		}
		return uplc.PartialBuiltinValue{Fn: f.Fn, Args: args}, nil, nil, nil
	default:
		return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatApply, "applied value is not a function (kind %s)", fn.Kind())
	}
}

// applyBuiltin invokes the builtin, special-casing `trace` (see
// uplc/builtin.TraceBuiltinName) to append its first argument to this run's
// trace log before returning its second argument unchanged.
func (m *Machine) applyBuiltin(fn uplc.Builtin, args []uplc.Value) (uplc.Value, *uplc.EvalError) {
	v, err := fn.Apply(args)
	if err != nil {
		return nil, err
	}
	if fn.Name() == builtin.TraceBuiltinName {
		if sv, ok := args[0].(uplc.StringValue); ok {
			m.trace.Log(sv.S)
		}
	}
	return v, nil
}

// forceValue implements the Force step rule: a Thunk resumes its suspended
// body; a PartialBuiltinValue consumes one pending force, firing
// immediately if that was its last one and it is already saturated.
func (m *Machine) forceValue(v uplc.Value) (uplc.Value, uplc.Term, *uplc.Env, *uplc.EvalError) {
	switch tv := v.(type) {
	case uplc.ThunkValue:
		return nil, tv.Body, tv.Env, nil
	case uplc.PartialBuiltinValue:
		if tv.RemainingForces == 0 {
			return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatForce, "builtin %s: no pending force", tv.Fn.Name())
		}
		remaining := tv.RemainingForces - 1
		if remaining == 0 && len(tv.Args) == tv.Fn.Arity() {
			if overrun := m.chargeBuiltinApp(tv.Fn, tv.Args); overrun != nil {
				return nil, nil, nil, budgetErr(overrun)
			}
			rv, err := m.applyBuiltin(tv.Fn, tv.Args)
			return rv, nil, nil, err
		}
		return uplc.PartialBuiltinValue{Fn: tv.Fn, Args: tv.Args, RemainingForces: remaining}, nil, nil, nil
	default:
		return nil, nil, nil, uplc.NewTypeMismatch(uplc.CatForce, "forced value is not a thunk (kind %s)", v.Kind())
	}
}

func (m *Machine) charge(cat uplc.StepCategory) *cost.Overrun {
	kind := stepKindFor(cat)
	return m.spender.Spend(cost.Category(cat), m.params.MachineCosts.Get(kind))
}

// chargeBuiltinApp charges the builtin-specific cost function (spec §4.C)
// for a saturated call, keyed by the memory footprint of each argument in
// order — distinct from the flat per-step charge() above, which only
// accounts for encountering a BuiltinRef term, not for firing it.
func (m *Machine) chargeBuiltinApp(fn uplc.Builtin, args []uplc.Value) *cost.Overrun {
	sizes := make([]int64, len(args))
	for i, a := range args {
		sizes[i] = a.MemoryFootprint()
	}
	var units cost.ExUnits
	if shape, ok := m.params.BuiltinCostModel[fn.Name()]; ok {
		units = shape.Cost(sizes)
	}
	return m.spender.Spend(cost.Category(uplc.CatBuiltinApp), units)
}

func stepKindFor(cat uplc.StepCategory) cost.StepKind {
	switch cat {
	case uplc.CatStartup:
		return cost.StepStartup
	case uplc.CatVar:
		return cost.StepVar
	case uplc.CatLamAbs:
		return cost.StepLamAbs
	case uplc.CatApply:
		return cost.StepApply
	case uplc.CatDelay:
		return cost.StepDelay
	case uplc.CatForce:
		return cost.StepForce
	case uplc.CatConst:
		return cost.StepConst
	case uplc.CatBuiltin, uplc.CatBuiltinApp:
		return cost.StepBuiltin
	case uplc.CatConstr:
		return cost.StepConstr
	case uplc.CatCase:
		return cost.StepCase
	default:
		return cost.StepStartup
	}
}

func budgetErr(o *cost.Overrun) *uplc.EvalError {
	return &uplc.EvalError{
		Kind:     uplc.BudgetExceeded,
		Category: uplc.StepCategory(o.Category),
		Message:  o.Error(),
	}
}

func (m *Machine) okResult(v uplc.Value) Result {
	return Result{
		Value:     v,
		Budget:    m.spender.Total(),
		CostByCat: m.spender.Snapshot(),
		TraceLog:  m.trace.Drain(),
	}
}

func (m *Machine) failResult(err *uplc.EvalError) Result {
	return Result{
		Err:       err,
		Budget:    m.spender.Total(),
		CostByCat: m.spender.Snapshot(),
		TraceLog:  m.trace.Drain(),
	}
}
