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

// Package cost implements the UPLC cost model: the closed set of
// cost-function shapes (spec §4.C), the per-builtin cost functions built
// from them, and the budget spender the CEK machine consults on every step.
package cost

import "github.com/holiman/uint256"

// ExUnits is the (memory, cpu) pair every cost computation and the running
// tally are expressed in. Both counters are non-negative and saturate
// rather than wrap on overflow (spec §8.1 "no silent truncation").
type ExUnits struct {
	Mem uint64
	CPU uint64
}

// Add returns the saturating sum of e and o, using uint256 arithmetic so an
// intermediate overflow is detected rather than silently wrapping at the
// 64-bit boundary.
func (e ExUnits) Add(o ExUnits) ExUnits {
	return ExUnits{Mem: saturatingAdd(e.Mem, o.Mem), CPU: saturatingAdd(e.CPU, o.CPU)}
}

func saturatingAdd(a, b uint64) uint64 {
	sum := new(uint256.Int).Add(uint256.NewInt(a), uint256.NewInt(b))
	if sum.IsUint64() {
		return sum.Uint64()
	}
	return ^uint64(0)
}

// Exceeds reports whether e exceeds the given (mem,cpu) limits. A zero
// field in limits is treated as "no budget at all for this counter" only
// when metered is true by the caller — Exceeds itself is a pure comparison.
func (e ExUnits) Exceeds(limit ExUnits) bool {
	return e.Mem > limit.Mem || e.CPU > limit.CPU
}

// Shape is the closed set of per-builtin cost-function forms spec §4.C
// names. Every concrete shape is a Shape; Linear combinations of argument
// sizes are the common case, with piecewise/diagonal forms for the
// trickier builtins (equality, indexing, bit shifts).
type Shape interface {
	// Cost computes the (mem,cpu) cost for one invocation given the memory
	// footprints of the value-level arguments, in argument order.
	Cost(sizes []int64) ExUnits
}

// linearPair is the common (intercept,slope)-style linear pair used by most
// shapes below; its mem/cpu components are independent linear functions.
type linearPair struct {
	MemIntercept, MemSlope int64
	CPUIntercept, CPUSlope int64
}

func (p linearPair) at(x int64) ExUnits {
	m := p.MemIntercept + p.MemSlope*x
	c := p.CPUIntercept + p.CPUSlope*x
	return ExUnits{Mem: clampU64(m), CPU: clampU64(c)}
}

func clampU64(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// Constant charges a fixed cost regardless of argument sizes.
type Constant struct{ Mem, CPU int64 }

func (s Constant) Cost([]int64) ExUnits {
	return ExUnits{Mem: clampU64(s.Mem), CPU: clampU64(s.CPU)}
}

// Linear is linear in one argument's size (the caller picks which argument
// feeds `sizes[0]` via LinearInX/Y/Z below).
type Linear struct{ linearPair }

func (s Linear) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 0)) }

// LinearInX/Y/Z pick argument 0/1/2's size for a Linear shape; kept as
// distinct named types so the cost-model table loader can select the right
// argument index by the builtin's declared shape without extra plumbing.
type LinearInX struct{ linearPair }
type LinearInY struct{ linearPair }
type LinearInZ struct{ linearPair }

func (s LinearInX) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 0)) }
func (s LinearInY) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 1)) }
func (s LinearInZ) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 2)) }

func arg(sizes []int64, i int) int64 {
	if i < len(sizes) {
		return sizes[i]
	}
	return 0
}

// AddedSizes is linear in size0+size1.
type AddedSizes struct{ linearPair }

func (s AddedSizes) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 0) + arg(sizes, 1)) }

// MultipliedSizes is linear in size0*size1.
type MultipliedSizes struct{ linearPair }

func (s MultipliedSizes) Cost(sizes []int64) ExUnits { return s.at(arg(sizes, 0) * arg(sizes, 1)) }

// MinSize is linear in min(size0,size1).
type MinSize struct{ linearPair }

func (s MinSize) Cost(sizes []int64) ExUnits {
	a, b := arg(sizes, 0), arg(sizes, 1)
	if a < b {
		return s.at(a)
	}
	return s.at(b)
}

// MaxSize is linear in max(size0,size1).
type MaxSize struct{ linearPair }

func (s MaxSize) Cost(sizes []int64) ExUnits {
	a, b := arg(sizes, 0), arg(sizes, 1)
	if a > b {
		return s.at(a)
	}
	return s.at(b)
}

// SubtractedSizes is linear in max(size0-size1, minClamp).
type SubtractedSizes struct {
	linearPair
	MinClamp int64
}

func (s SubtractedSizes) Cost(sizes []int64) ExUnits {
	d := arg(sizes, 0) - arg(sizes, 1)
	if d < s.MinClamp {
		d = s.MinClamp
	}
	return s.at(d)
}

// LinearOnDiagonal is linear in x when the two argument sizes are equal,
// otherwise a flat constant.
type LinearOnDiagonal struct {
	linearPair
	ConstMem, ConstCPU int64
}

func (s LinearOnDiagonal) Cost(sizes []int64) ExUnits {
	x, y := arg(sizes, 0), arg(sizes, 1)
	if x == y {
		return s.at(x)
	}
	return ExUnits{Mem: clampU64(s.ConstMem), CPU: clampU64(s.ConstCPU)}
}

// ConstAboveDiagonal charges a flat cost when size0 >= threshold+size1,
// otherwise defers to Below.
type ConstAboveDiagonal struct {
	Threshold      int64
	ConstMem       int64
	ConstCPU       int64
	Below          Shape
}

func (s ConstAboveDiagonal) Cost(sizes []int64) ExUnits {
	x, y := arg(sizes, 0), arg(sizes, 1)
	if x >= y+s.Threshold {
		return ExUnits{Mem: clampU64(s.ConstMem), CPU: clampU64(s.ConstCPU)}
	}
	return s.Below.Cost(sizes)
}

// ConstBelowDiagonal is the mirror image of ConstAboveDiagonal.
type ConstBelowDiagonal struct {
	Threshold int64
	ConstMem  int64
	ConstCPU  int64
	Above     Shape
}

func (s ConstBelowDiagonal) Cost(sizes []int64) ExUnits {
	x, y := arg(sizes, 0), arg(sizes, 1)
	if y >= x+s.Threshold {
		return ExUnits{Mem: clampU64(s.ConstMem), CPU: clampU64(s.ConstCPU)}
	}
	return s.Above.Cost(sizes)
}

// QuadraticInY computes a*y^2 + b*y + c independently for mem and cpu.
type QuadraticInY struct {
	MemA, MemB, MemC int64
	CPUA, CPUB, CPUC int64
}

func (s QuadraticInY) Cost(sizes []int64) ExUnits {
	y := arg(sizes, 1)
	m := s.MemA*y*y + s.MemB*y + s.MemC
	c := s.CPUA*y*y + s.CPUB*y + s.CPUC
	return ExUnits{Mem: clampU64(m), CPU: clampU64(c)}
}

// LiteralInYOrLinearInZ charges a literal constant keyed by y when y is
// small enough to index Literals, else falls back to linear-in-z. No
// canonicalTable entry builds this shape; shiftByteString and
// rotateByteString are costed with LinearInX.
type LiteralInYOrLinearInZ struct {
	Literals map[int64]ExUnits
	Fallback Shape
}

func (s LiteralInYOrLinearInZ) Cost(sizes []int64) ExUnits {
	if v, ok := s.Literals[arg(sizes, 1)]; ok {
		return v
	}
	return s.Fallback.Cost(sizes)
}

// LinearInMaxYZ is linear in max(size1,size2).
type LinearInMaxYZ struct{ linearPair }

func (s LinearInMaxYZ) Cost(sizes []int64) ExUnits {
	y, z := arg(sizes, 1), arg(sizes, 2)
	if y > z {
		return s.at(y)
	}
	return s.at(z)
}

// LinearInYAndZ sums independent linear contributions from size1 and size2.
type LinearInYAndZ struct {
	YMemSlope, YCPUSlope int64
	ZMemSlope, ZCPUSlope int64
	MemIntercept         int64
	CPUIntercept         int64
}

func (s LinearInYAndZ) Cost(sizes []int64) ExUnits {
	y, z := arg(sizes, 1), arg(sizes, 2)
	m := s.MemIntercept + s.YMemSlope*y + s.ZMemSlope*z
	c := s.CPUIntercept + s.YCPUSlope*y + s.ZCPUSlope*z
	return ExUnits{Mem: clampU64(m), CPU: clampU64(c)}
}
