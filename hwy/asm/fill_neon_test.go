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

import (
	"fmt"
	"testing"
)

var fillSizes = []int{0, 1, 7, 8, 9, 11, 15, 16, 17, 31, 32, 33, 100, 1023}

func TestFillU16(t *testing.T) {
	for _, n := range fillSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			// One guard element past the end must stay untouched.
			backing := make([]uint16, n+1)
			backing[n] = 0xBEEF
			FillU16(backing[:n])

			for i := 0; i < n; i++ {
				if backing[i] != 1 {
					t.Fatalf("FillU16: dst[%d] = %d, want 1", i, backing[i])
				}
			}
			if backing[n] != 0xBEEF {
				t.Errorf("FillU16 wrote past len: guard = %#x", backing[n])
			}
		})
	}
}

func TestCheckU16(t *testing.T) {
	for _, n := range fillSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			buf := make([]uint16, n)
			for i := range buf {
				buf[i] = 1
			}
			if !CheckU16(buf) {
				t.Fatal("CheckU16 on all ones = false, want true")
			}
			for i := range buf {
				buf[i] = 2
				if CheckU16(buf) {
					t.Errorf("CheckU16 with buf[%d] = 2 returned true", i)
				}
				buf[i] = 1
			}
		})
	}
}

func TestCheckU16IgnoresPastLen(t *testing.T) {
	backing := []uint16{1, 1, 1, 1, 1, 1, 1, 1, 1, 0}
	if !CheckU16(backing[:9]) {
		t.Error("CheckU16 read the element past len")
	}
}

func TestFillCheckU16(t *testing.T) {
	for _, n := range fillSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			backing := make([]uint16, n+1)
			backing[n] = 0xBEEF
			if !FillCheckU16(backing[:n]) {
				t.Fatal("FillCheckU16 = false, want true")
			}
			for i := 0; i < n; i++ {
				if backing[i] != 1 {
					t.Fatalf("FillCheckU16: dst[%d] = %d, want 1", i, backing[i])
				}
			}
			if backing[n] != 0xBEEF {
				t.Errorf("FillCheckU16 wrote past len: guard = %#x", backing[n])
			}
		})
	}
}

func TestKernelsDoNotAllocate(t *testing.T) {
	buf := make([]uint16, 1027)
	allocs := testing.AllocsPerRun(100, func() {
		FillU16(buf)
		_ = CheckU16(buf)
		_ = FillCheckU16(buf)
	})
	if allocs != 0 {
		t.Errorf("kernels allocated %v times per run, want 0", allocs)
	}
}
