// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hwy provides portable SIMD lane operations with runtime CPU dispatch.
//
// Vectors model a 128-bit register: Load, Set, Store, Equal and the
// reductions in this package describe what one vector instruction does, and
// the kernels in hwy/asm implement the same steps with NEON instructions.
// Code written against this package is the reference the assembly kernels are
// tested against, and the path taken when no kernel is dispatched.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fillcheck/hwy"
//
//	ones := hwy.Set[uint16](1)
//	v := hwy.Load(buf)
//	allEqual := hwy.ReduceMin(hwy.VecFromMask(hwy.Equal(v, ones))) != 0
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle. In base mode it wraps a slice of
// MaxLanes[T]() elements.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
//
// Mask instances should not be created directly; use comparison operations
// like Equal instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}
