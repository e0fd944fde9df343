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

// ScalarFillAndCheck writes Value to every element of buf in index order, then
// compares every element against Value. The second pass does not stop at a
// mismatch; it clears a flag and keeps scanning. An empty buffer is trivially
// filled.
func ScalarFillAndCheck(buf []uint16) bool {
	for i := range buf {
		buf[i] = Value
	}

	ok := true
	for i := range buf {
		if buf[i] != Value {
			ok = false
		}
	}
	return ok
}

// ScalarFillAndCheckEarlyExit is ScalarFillAndCheck with a second pass that
// returns at the first mismatch. The fill pass still always runs to the end.
func ScalarFillAndCheckEarlyExit(buf []uint16) bool {
	for i := range buf {
		buf[i] = Value
	}

	for i := range buf {
		if buf[i] != Value {
			return false
		}
	}
	return true
}
