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

package cost

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"os"
)

// Category names the accounting bucket a spend was charged to. It mirrors
// uplc.StepCategory but is declared independently so this package never
// imports its parent (cost is a leaf the uplc package's cek/builtin
// siblings both depend on).
type Category string

// Spender accumulates (mem,cpu) spend per category and signals overrun. It
// is owned by exactly one evaluation — the caller must not share a Spender
// across concurrent evaluations (spec §5).
type Spender struct {
	limits BudgetLimits
	tally  map[Category]ExUnits
	total  ExUnits
	order  []Category // insertion order, for deterministic reporting
}

// NewSpender builds a Spender against the given budget limits. Zero-value
// BudgetLimits with Metered=false means unmetered (test mode).
func NewSpender(limits BudgetLimits) *Spender {
	return &Spender{limits: limits, tally: make(map[Category]ExUnits)}
}

// Overrun is returned by Spend when the running total would exceed the
// configured limit. Category and Tally are snapshotted at the moment of
// overrun for billing/debugging.
type Overrun struct {
	Category Category
	Tally    map[Category]ExUnits
	Total    ExUnits
}

func (o *Overrun) Error() string {
	return fmt.Sprintf("budget exceeded at category %s: spent mem=%d cpu=%d", o.Category, o.Total.Mem, o.Total.CPU)
}

// Spend records cost against category, returning an *Overrun if the running
// total now exceeds the configured limits. The tally is updated
// unconditionally (even on overrun) so the partial tally is available to
// the caller.
func (s *Spender) Spend(category Category, c ExUnits) *Overrun {
	if _, seen := s.tally[category]; !seen {
		s.order = append(s.order, category)
	}
	s.tally[category] = s.tally[category].Add(c)
	s.total = s.total.Add(c)
	if s.limits.Metered && s.total.Exceeds(ExUnits{Mem: s.limits.Mem, CPU: s.limits.CPU}) {
		return &Overrun{Category: category, Tally: s.Snapshot(), Total: s.total}
	}
	return nil
}

// Total returns the cumulative spend so far.
func (s *Spender) Total() ExUnits { return s.total }

// Snapshot returns a defensive copy of the per-category tally.
func (s *Spender) Snapshot() map[Category]ExUnits {
	out := make(map[Category]ExUnits, len(s.tally))
	for k, v := range s.tally {
		out[k] = v
	}
	return out
}

// Report renders the current tally as an aligned table, purely for
// developer debugging — evaluateDebug's programmatic Budget/CostsByCategory
// fields never depend on this formatting.
func (s *Spender) Report(w *os.File) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"category", "mem", "cpu"})
	for _, cat := range s.order {
		eu := s.tally[cat]
		table.Append([]string{string(cat), fmt.Sprint(eu.Mem), fmt.Sprint(eu.CPU)})
	}
	table.Render()
}
