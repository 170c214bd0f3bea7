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

package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
	"github.com/probeum/scalus-uplc/uplc/flat"
)

// Report is evaluateDebug's return shape (spec §6): never raises, instead
// carrying a Success flag alongside whatever budget, costs, and logs
// accumulated before a failure (if any).
type Report struct {
	Success         bool
	Value           uplc.Value
	Err             *uplc.EvalError
	Budget          cost.ExUnits
	CostsByCategory map[cost.Category]cost.ExUnits
	Logs            []string
}

// EvaluateDebug runs program.Term exactly like Evaluate, but catches any
// failure and returns it as a Report field rather than propagating it — the
// budget, per-category costs, and trace log are always populated, success
// or not.
func EvaluateDebug(program flat.Program, params Params) Report {
	res := run(program, params)
	return Report{
		Success:         res.Err == nil,
		Value:           res.Value,
		Err:             res.Err,
		Budget:          res.Budget,
		CostsByCategory: res.CostByCat,
		Logs:            res.TraceLog,
	}
}

// String renders the cost-by-category tally as an aligned table purely for
// human debugging (DOMAIN STACK); it is never consulted by golden-value
// tests, which read CostsByCategory directly.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "success: %v\n", r.Success)
	if r.Err != nil {
		fmt.Fprintf(&b, "error: %s\n", r.Err.Error())
	}
	fmt.Fprintf(&b, "budget: mem=%d cpu=%d\n", r.Budget.Mem, r.Budget.CPU)

	cats := make([]string, 0, len(r.CostsByCategory))
	for c := range r.CostsByCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"category", "mem", "cpu"})
	for _, c := range cats {
		units := r.CostsByCategory[cost.Category(c)]
		table.Append([]string{c, fmt.Sprint(units.Mem), fmt.Sprint(units.CPU)})
	}
	table.Render()
	return b.String()
}
