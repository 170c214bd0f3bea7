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

import "fmt"

// FailureKind is the closed taxonomy every evaluation failure maps to
// exactly one of.
type FailureKind int

const (
	// UserError is raised by an explicit Error term.
	UserError FailureKind = iota
	// BudgetExceeded is raised by the spender when a counter overruns its
	// limit.
	BudgetExceeded
	// TypeMismatch is raised when a value of the wrong kind reaches an
	// operation (forcing a non-thunk, arithmetic on a non-Integer, ...).
	TypeMismatch
	// DomainError is raised when argument shapes were right but the values
	// were invalid (division by zero, empty-list head, ...).
	DomainError
	// DecodeError is raised by Data-elimination builtins on the wrong
	// variant, by serialization of an ML-result, or by a malformed
	// flat/CBOR program.
	DecodeError
	// MissingBranch is raised when a Case dispatches on an out-of-range tag.
	MissingBranch
)

func (k FailureKind) String() string {
	switch k {
	case UserError:
		return "UserError"
	case BudgetExceeded:
		return "BudgetExceeded"
	case TypeMismatch:
		return "TypeMismatch"
	case DomainError:
		return "DomainError"
	case DecodeError:
		return "DecodeError"
	case MissingBranch:
		return "MissingBranch"
	default:
		return "UnknownFailure"
	}
}

// StepCategory names the accounting bucket a cost was charged to; it is
// attached to a failure so the caller can bill the partial work and debug
// where evaluation stopped.
type StepCategory string

const (
	CatStartup     StepCategory = "startup"
	CatVar         StepCategory = "var"
	CatLamAbs      StepCategory = "lamAbs"
	CatApply       StepCategory = "apply"
	CatDelay       StepCategory = "delay"
	CatForce       StepCategory = "force"
	CatConst       StepCategory = "const"
	CatBuiltin     StepCategory = "builtin"
	CatConstr      StepCategory = "constr"
	CatCase        StepCategory = "case"
	CatBuiltinApp  StepCategory = "builtinApp"
)

// EvalError is the single error type the CEK machine and builtin registry
// ever return. It is fatal to the current evaluation — there is no local
// recovery, per spec §7.
type EvalError struct {
	Kind     FailureKind
	Category StepCategory
	Message  string
	// BuiltinName is set when the failure originated inside a builtin
	// evaluator closure.
	BuiltinName string
}

func (e *EvalError) Error() string {
	if e.BuiltinName != "" {
		return fmt.Sprintf("%s: %s (builtin %s, category %s)", e.Kind, e.Message, e.BuiltinName, e.Category)
	}
	return fmt.Sprintf("%s: %s (category %s)", e.Kind, e.Message, e.Category)
}

func newErr(kind FailureKind, cat StepCategory, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Category: cat, Message: fmt.Sprintf(format, args...)}
}

// NewTypeMismatch builds a TypeMismatch failure charged to the given category.
func NewTypeMismatch(cat StepCategory, format string, args ...interface{}) *EvalError {
	return newErr(TypeMismatch, cat, format, args...)
}

// NewDomainError builds a DomainError failure charged to the given category.
func NewDomainError(cat StepCategory, format string, args ...interface{}) *EvalError {
	return newErr(DomainError, cat, format, args...)
}

// NewDecodeError builds a DecodeError failure charged to the given category.
func NewDecodeError(cat StepCategory, format string, args ...interface{}) *EvalError {
	return newErr(DecodeError, cat, format, args...)
}

// NewUserError builds the failure a bare Error term raises.
func NewUserError() *EvalError {
	return &EvalError{Kind: UserError, Category: CatStartup, Message: "evaluation failed: (Error)"}
}

// NewMissingBranch builds the failure a Case raises on an out-of-range tag.
func NewMissingBranch(tag uint64, numBranches int) *EvalError {
	return &EvalError{
		Kind:     MissingBranch,
		Category: CatCase,
		Message:  fmt.Sprintf("case: tag %d has no matching branch (have %d)", tag, numBranches),
	}
}
