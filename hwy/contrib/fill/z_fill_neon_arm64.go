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

package fill

import (
	"github.com/ajroetker/go-fillcheck/hwy"
	"github.com/ajroetker/go-fillcheck/hwy/asm"
)

func init() {
	// Respect HWY_NO_SIMD (folded into the dispatch level) to allow fallback testing.
	if hwy.CurrentLevel() != hwy.DispatchNEON {
		return
	}

	// These run after the init() in fill.go due to file naming
	// (z_ sorts after fill.go).
	Fill = asm.FillU16
	Check = asm.CheckU16
	FillAndCheckFused = asm.FillCheckU16
	vectorKernels = true
}
