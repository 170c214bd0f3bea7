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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/probeum/scalus-uplc/uplc"
)

// repeatedForcedBuiltin builds a closed term `(force sha2_256) #a ((force
// sha2_256) #b)`, two independent occurrences of the same forced builtin
// applied to literal constants (extraction assumes a closed input term, so
// every argument here is a Const rather than a variable reference).
func repeatedForcedBuiltin() uplc.Term {
	forced := &uplc.Force{Body: &uplc.BuiltinRef{Name: "sha2_256"}}
	a := &uplc.Const{Value: uplc.ByteStringValue{B: []byte("a")}}
	b := &uplc.Const{Value: uplc.ByteStringValue{B: []byte("b")}}
	return &uplc.Apply{
		Fun: &uplc.Apply{Fun: forced, Arg: a},
		Arg: &uplc.Apply{Fun: forced, Arg: b},
	}
}

func TestExtractForcedBuiltinsWrapsOneSharedBinding(t *testing.T) {
	term := repeatedForcedBuiltin()

	got := ExtractForcedBuiltins(term, nil)

	outer, ok := got.(*uplc.Apply)
	require.True(t, ok, "expected a single wrapping Apply(LamAbs, forced)")
	lam, ok := outer.Fun.(*uplc.LamAbs)
	require.True(t, ok)
	require.Equal(t, "__builtin_sha2_256", lam.Name)

	forced, ok := outer.Arg.(*uplc.Force)
	require.True(t, ok)
	ref, ok := forced.Body.(*uplc.BuiltinRef)
	require.True(t, ok)
	require.Equal(t, "sha2_256", ref.Name)
}

func TestExtractForcedBuiltinsReplacesBothOccurrencesWithSameVar(t *testing.T) {
	term := repeatedForcedBuiltin()

	got := ExtractForcedBuiltins(term, nil)

	outer := got.(*uplc.Apply)
	body := outer.Fun.(*uplc.LamAbs).Body
	inner := body.(*uplc.Apply)

	leftApp := inner.Fun.(*uplc.Apply)
	rightApp := inner.Arg.(*uplc.Apply)

	leftVar, ok := leftApp.Fun.(*uplc.Var)
	require.True(t, ok)
	rightVar, ok := rightApp.Fun.(*uplc.Var)
	require.True(t, ok)
	require.Equal(t, leftVar.Index, rightVar.Index)
	require.Equal(t, "__builtin_sha2_256", leftVar.Name)
}

func TestExtractForcedBuiltinsRespectsExceptionSet(t *testing.T) {
	term := repeatedForcedBuiltin()
	except := mapset.NewThreadUnsafeSet[string]("sha2_256")

	got := ExtractForcedBuiltins(term, except)

	require.True(t, uplc.TermEqual(term, got))
}

func TestExtractForcedBuiltinsNoOpWhenNoneFound(t *testing.T) {
	term := &uplc.Apply{Fun: &uplc.BuiltinRef{Name: "addInteger"}, Arg: &uplc.Var{Name: "x", Index: 1}}

	got := ExtractForcedBuiltins(term, nil)

	require.True(t, uplc.TermEqual(term, got))
}

func TestFreshNameAvoidsCollisionWithExistingBinder(t *testing.T) {
	reserved := map[string]struct{}{"__builtin_sha2_256": {}}

	name := freshName(reserved, "sha2_256")

	require.Equal(t, "__builtin_sha2_256_0", name)
}
