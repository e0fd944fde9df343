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

//go:build !noasm && arm64

package asm

// NEON kernels for filling uint16 buffers with 1 and verifying the result.
// Each kernel walks len/8 full 128-bit chunks through the slice header it is
// given and finishes the len%8 remainder one element at a time, so it never
// touches memory outside dst[:len(dst)]. Callers only have to pass a valid
// slice; there is no runtime bounds check beyond that.

//go:noescape
func fillU16NEON(dst []uint16)

//go:noescape
func checkU16NEON(src []uint16) bool

//go:noescape
func fillCheckU16NEON(dst []uint16) bool

// FillU16 sets every element of dst to 1 using 8-lane vector stores.
func FillU16(dst []uint16) {
	if len(dst) == 0 {
		return
	}
	fillU16NEON(dst)
}

// CheckU16 reports whether every element of src equals 1. It stops at the
// first chunk or remainder element that differs.
func CheckU16(src []uint16) bool {
	if len(src) == 0 {
		return true
	}
	return checkU16NEON(src)
}

// FillCheckU16 stores 1 into each chunk of dst and verifies that chunk before
// moving on. It returns false at the first chunk that does not read back as
// all ones, leaving the chunks after it untouched.
func FillCheckU16(dst []uint16) bool {
	if len(dst) == 0 {
		return true
	}
	return fillCheckU16NEON(dst)
}
