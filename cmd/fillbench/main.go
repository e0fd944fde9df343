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

// Command fillbench times the scalar and vector fill-and-check engines on a
// zeroed square buffer of uint16 values.
//
// Usage:
//
//	fillbench                                   # 512x512, scalar/fused/separated
//	fillbench run -n 1024 --variants fused,separated --repeat 5
//	fillbench run --config plan.yaml --format yaml
//	fillbench info
//
// Vector variants run on the scalar engine when NEON is not available (or
// HWY_NO_SIMD is set); the report marks those runs as a fallback.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fillbench: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
