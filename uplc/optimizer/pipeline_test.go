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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc"
	"github.com/probeum/scalus-uplc/uplc/cost"
)

func TestPipelineOmitsCaseConstrCompactionBelowV3(t *testing.T) {
	passes := Pipeline(cost.PlutusV2, Options{})

	for _, p := range passes {
		_, isCompaction := p.(compactCaseConstrPass)
		require.False(t, isCompaction, "V2 pipeline must not include case/constr compaction")
	}
}

func TestPipelineAppendsCaseConstrCompactionAtV3(t *testing.T) {
	passes := Pipeline(cost.PlutusV3, Options{})

	last := passes[len(passes)-1]
	_, isCompaction := last.(compactCaseConstrPass)
	require.True(t, isCompaction, "V3 pipeline must end with case/constr compaction")
}

func TestPipelineRunIdentityLambdaChain(t *testing.T) {
	// (lambda x. x) 7 should reduce all the way to the literal under Run.
	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: &uplc.Var{Name: "x", Index: 1}},
		Arg: intConst(7),
	}

	got := Run(term, cost.PlutusV2, Options{})

	require.True(t, uplc.TermEqual(intConst(7), got))
}

func TestPipelineRunDropsDeadPureComputation(t *testing.T) {
	dead := &uplc.Apply{
		Fun: &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "multiplyInteger"}, Arg: intConst(2)},
		Arg: intConst(3),
	}
	term := &uplc.Apply{
		Fun: &uplc.LamAbs{Name: "x", Body: intConst(1)},
		Arg: dead,
	}

	got := Run(term, cost.PlutusV1, Options{})

	require.True(t, uplc.TermEqual(intConst(1), got))
}
