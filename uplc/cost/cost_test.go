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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExUnitsAddSaturatesAtUint64Max(t *testing.T) {
	a := ExUnits{Mem: math.MaxUint64 - 1, CPU: 1}
	b := ExUnits{Mem: 10, CPU: 1}

	got := a.Add(b)

	require.Equal(t, uint64(math.MaxUint64), got.Mem)
	require.Equal(t, uint64(2), got.CPU)
}

func TestExUnitsExceeds(t *testing.T) {
	require.True(t, ExUnits{Mem: 10}.Exceeds(ExUnits{Mem: 9, CPU: 100}))
	require.False(t, ExUnits{Mem: 9, CPU: 100}.Exceeds(ExUnits{Mem: 10, CPU: 100}))
}

func TestLinearShapeCostsOnArgZero(t *testing.T) {
	s := Linear{linearPair{MemIntercept: 1, MemSlope: 2, CPUIntercept: 3, CPUSlope: 4}}

	got := s.Cost([]int64{5})

	require.Equal(t, ExUnits{Mem: 11, CPU: 23}, got)
}

func TestMinSizeAndMaxSizePickCorrectArgument(t *testing.T) {
	s := MinSize{linearPair{MemSlope: 1, CPUSlope: 1}}
	require.Equal(t, ExUnits{Mem: 3, CPU: 3}, s.Cost([]int64{3, 7}))

	m := MaxSize{linearPair{MemSlope: 1, CPUSlope: 1}}
	require.Equal(t, ExUnits{Mem: 7, CPU: 7}, m.Cost([]int64{3, 7}))
}

func TestSubtractedSizesClampsAtMinClamp(t *testing.T) {
	s := SubtractedSizes{linearPair: linearPair{MemSlope: 1, CPUSlope: 1}, MinClamp: 0}

	got := s.Cost([]int64{2, 9})

	require.Equal(t, ExUnits{Mem: 0, CPU: 0}, got)
}

func TestConstAboveDiagonalFallsBackBelowThreshold(t *testing.T) {
	s := ConstAboveDiagonal{
		Threshold: 10,
		ConstMem:  99, ConstCPU: 99,
		Below: Constant{Mem: 1, CPU: 1},
	}

	require.Equal(t, ExUnits{Mem: 1, CPU: 1}, s.Cost([]int64{1, 1}))
	require.Equal(t, ExUnits{Mem: 99, CPU: 99}, s.Cost([]int64{20, 1}))
}

func TestBuildBuiltinCostModelRejectsWrongLength(t *testing.T) {
	_, err := BuildBuiltinCostModel(PlutusV1, []int64{1, 2, 3})

	require.Error(t, err)
	var shapeErr *ErrCostModelShape
	require.ErrorAs(t, err, &shapeErr)
}

func TestBuildBuiltinCostModelCoversEveryCanonicalEntry(t *testing.T) {
	table := canonicalTable(PlutusV1)
	want := 0
	for _, e := range table {
		want += e.NumArgs
	}
	flat := make([]int64, want)
	for i := range flat {
		flat[i] = int64(i)
	}

	model, err := BuildBuiltinCostModel(PlutusV1, flat)

	require.NoError(t, err)
	require.Len(t, model, len(table))
	require.Contains(t, model, "addInteger")
	// addInteger is registered as MaxSize{MemIntercept:0, MemSlope:1, CPUIntercept:2, CPUSlope:3}.
	got := model["addInteger"].Cost([]int64{2, 5})
	require.Equal(t, ExUnits{Mem: 5, CPU: 17}, got)
}

func TestBuildBuiltinCostModelGrowsAcrossVersions(t *testing.T) {
	v1Table := canonicalTable(PlutusV1)
	v3Table := canonicalTable(PlutusV3)
	plominTable := canonicalTable(PlutusPlomin)

	require.Less(t, len(v1Table), len(v3Table))
	require.Less(t, len(v3Table), len(plominTable))
}

func TestTableCacheGetReturnsSameModelOnRepeatedCalls(t *testing.T) {
	table := canonicalTable(PlutusV1)
	want := 0
	for _, e := range table {
		want += e.NumArgs
	}
	flat := make([]int64, want)

	cache, err := NewTableCache(4)
	require.NoError(t, err)

	first, err := cache.Get(PlutusV1, flat)
	require.NoError(t, err)
	second, err := cache.Get(PlutusV1, flat)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
}

func TestTableCacheGetPropagatesBuildError(t *testing.T) {
	cache, err := NewTableCache(4)
	require.NoError(t, err)

	_, err = cache.Get(PlutusV1, []int64{1, 2, 3})

	require.Error(t, err)
}

func TestSpenderSpendAccumulatesAndSignalsOverrun(t *testing.T) {
	s := NewSpender(BudgetLimits{Mem: 10, CPU: 10, Metered: true})

	require.Nil(t, s.Spend("step", ExUnits{Mem: 5, CPU: 5}))
	overrun := s.Spend("step", ExUnits{Mem: 6, CPU: 0})

	require.NotNil(t, overrun)
	require.Equal(t, Category("step"), overrun.Category)
	require.Equal(t, ExUnits{Mem: 11, CPU: 5}, s.Total())
}

func TestSpenderUnmeteredNeverOverruns(t *testing.T) {
	s := NewSpender(BudgetLimits{Metered: false})

	overrun := s.Spend("step", ExUnits{Mem: math.MaxUint64, CPU: math.MaxUint64})

	require.Nil(t, overrun)
}

func TestSpenderSnapshotIsDefensiveCopy(t *testing.T) {
	s := NewSpender(BudgetLimits{Metered: false})
	s.Spend("step", ExUnits{Mem: 1, CPU: 1})

	snap := s.Snapshot()
	snap["step"] = ExUnits{Mem: 999}

	require.NotEqual(t, snap["step"], s.Snapshot()["step"])
}
