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

package uplc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailureKindString(t *testing.T) {
	require.Equal(t, "TypeMismatch", TypeMismatch.String())
	require.Equal(t, "BudgetExceeded", BudgetExceeded.String())
	require.Equal(t, "UnknownFailure", FailureKind(999).String())
}

func TestEvalErrorErrorIncludesBuiltinNameWhenSet(t *testing.T) {
	err := NewTypeMismatch(CatBuiltinApp, "bad value")
	err.BuiltinName = "headList"

	require.Contains(t, err.Error(), "headList")
	require.Contains(t, err.Error(), "bad value")
}

func TestEvalErrorErrorOmitsBuiltinNameWhenUnset(t *testing.T) {
	err := NewDomainError(CatBuiltinApp, "out of range")

	require.NotContains(t, err.Error(), "(builtin ")
}

func TestNewMissingBranchMessage(t *testing.T) {
	err := NewMissingBranch(3, 2)

	require.Equal(t, MissingBranch, err.Kind)
	require.Contains(t, err.Message, "tag 3")
}

func TestNewUserErrorKind(t *testing.T) {
	err := NewUserError()

	require.Equal(t, UserError, err.Kind)
}
