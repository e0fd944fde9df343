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

package fill

// Value is the constant every element holds after a fill.
const Value uint16 = 1

// Lanes is the number of uint16 lanes in a 128-bit vector register.
const Lanes = 8

// Dispatch function variables.
// These are initialized to the base (pure Go) implementations and may be
// overridden by architecture-specific implementations in init().
var (
	// Fill sets every element of buf to Value.
	Fill func(buf []uint16)

	// Check reports whether every element of buf equals Value, stopping at
	// the first failing chunk or remainder element.
	Check func(buf []uint16) bool

	// FillAndCheckFused fills and verifies buf one chunk at a time, stopping
	// at the first chunk that fails.
	FillAndCheckFused func(buf []uint16) bool
)

// vectorKernels records whether the dispatch variables point at hardware
// vector kernels.
var vectorKernels bool

func init() {
	// Initialize with base (pure Go) implementations.
	// z_fill_neon_arm64.go replaces them when NEON is dispatched.
	Fill = BaseFill
	Check = BaseCheck
	FillAndCheckFused = BaseFillAndCheckFused
}

// FillAndCheckSeparated fills the whole buffer, then checks the whole buffer.
// The fill always completes before any element is verified.
func FillAndCheckSeparated(buf []uint16) bool {
	Fill(buf)
	return Check(buf)
}
