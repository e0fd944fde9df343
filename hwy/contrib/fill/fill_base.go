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

import "github.com/ajroetker/go-fillcheck/hwy"

// BaseFill stores the broadcast Value into every full chunk of buf, then
// writes the remainder element by element.
func BaseFill(buf []uint16) {
	ones := hwy.Set(Value)
	lanes := hwy.MaxLanes[uint16]()

	hwy.ProcessWithTail[uint16](len(buf),
		func(offset int) {
			hwy.Store(ones, buf[offset:offset+lanes])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				buf[i] = Value
			}
		},
	)
}

// BaseCheck reports whether every element of buf equals Value. It returns
// false as soon as one chunk or one remainder element differs.
func BaseCheck(buf []uint16) bool {
	ones := hwy.Set(Value)
	lanes := hwy.MaxLanes[uint16]()
	full, _ := hwy.ChunkSplit[uint16](len(buf))

	for c := range full {
		if !chunkMatches(hwy.Load(buf[c*lanes:(c+1)*lanes]), ones) {
			return false
		}
	}

	for _, v := range buf[full*lanes:] {
		if v != Value {
			return false
		}
	}
	return true
}

// BaseFillAndCheckFused stores each chunk and verifies it before moving to the
// next one. On the first failing chunk it returns false and the chunks after
// it are left as they were.
func BaseFillAndCheckFused(buf []uint16) bool {
	return fillAndCheckFused(buf, hwy.Store[uint16])
}

// BaseFillAndCheckSeparated runs BaseFill over the whole buffer, then BaseCheck.
func BaseFillAndCheckSeparated(buf []uint16) bool {
	BaseFill(buf)
	return BaseCheck(buf)
}

// fillAndCheckFused is BaseFillAndCheckFused with the chunk store passed in,
// so tests can corrupt a chunk between its store and its verification.
func fillAndCheckFused(buf []uint16, store func(hwy.Vec[uint16], []uint16)) bool {
	ones := hwy.Set(Value)
	lanes := hwy.MaxLanes[uint16]()
	n := len(buf)
	i := 0

	for ; i+lanes <= n; i += lanes {
		chunk := buf[i : i+lanes]
		store(ones, chunk)
		if !chunkMatches(hwy.Load(chunk), ones) {
			return false
		}
	}

	for ; i < n; i++ {
		buf[i] = Value
		if buf[i] != Value {
			return false
		}
	}
	return true
}

// chunkMatches reduces the lane-wise compare of v against ones with an
// across-lane minimum. Matching lanes are all ones and mismatching lanes are
// zero, so a zero minimum means at least one lane differs.
func chunkMatches(v, ones hwy.Vec[uint16]) bool {
	return hwy.ReduceMin(hwy.VecFromMask(hwy.Equal(v, ones))) != 0
}
