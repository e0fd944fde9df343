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

// Package fill fills uint16 buffers with the constant 1 and verifies the
// result, with a scalar engine and a 128-bit vector engine that can be
// benchmarked side by side.
//
// # Engines
//
// The scalar engine writes every element, then scans every element:
//   - ScalarFillAndCheck keeps scanning after a mismatch and returns an accumulated flag
//   - ScalarFillAndCheckEarlyExit returns at the first mismatch
//
// The vector engine works on chunks of Lanes elements (one 128-bit register)
// and handles the trailing len%Lanes elements one at a time:
//   - Fill stores the broadcast value into every chunk
//   - Check compares each chunk lane-wise and reduces the compare mask with an
//     across-lane minimum, returning false at the first failing chunk
//   - FillAndCheckFused stores and verifies one chunk before moving on, and
//     returns false at the first failing chunk without writing the rest
//   - FillAndCheckSeparated runs Fill over the whole buffer, then Check
//
// The fused variant leaves the buffer partially written when it aborts. That
// is the trade it makes for a single pass; FillAndCheckSeparated always
// completes the fill.
//
// # Dispatch
//
// Fill, Check and FillAndCheckFused are function variables. They start out
// as the portable Base* implementations and are replaced once at init by the
// NEON kernels in hwy/asm on ARM64. Set HWY_NO_SIMD=1 to keep the portable
// versions.
//
// New selects an engine once: a Vector when the kernels are bound, a Scalar
// otherwise.
//
//	fc := fill.New(fill.Separated)
//	buf := make([]uint16, 512*512)
//	ok := fc.FillAndCheck(buf)
//
// # Memory safety
//
// Engines borrow the buffer for the duration of a call and never allocate,
// resize or retain it. Vector accesses are confined to buf[:len(buf)] by
// construction: the chunk count is len/Lanes and the remainder is handled
// element by element. The only precondition is a valid slice.
package fill
