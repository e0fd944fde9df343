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

package hwy

// ChunkSplit splits size elements into full vectors of MaxLanes[T]() lanes and
// the trailing elements that do not fill a vector.
//
//	full, remaining := hwy.ChunkSplit[uint16](11) // 1, 3
func ChunkSplit[T Lanes](size int) (full, remaining int) {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 || size <= 0 {
		return 0, max(size, 0)
	}
	return size / maxLanes, size % maxLanes
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	ones := hwy.Set[uint16](1)
//	hwy.ProcessWithTail[uint16](len(buf),
//	    func(offset int) {
//	        hwy.Store(ones, buf[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            buf[i] = 1
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()
	fullVectors, remaining := ChunkSplit[T](size)

	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}
