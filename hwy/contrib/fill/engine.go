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

import "slices"

// FillChecker fills a buffer with Value and reports whether the fill holds.
type FillChecker interface {
	// Name identifies the engine and variant, e.g. "scalar" or "separated".
	Name() string

	// FillAndCheck fills buf and verifies it. It never touches memory
	// outside buf[:len(buf)]. The engines returned by New do not allocate; a
	// Vector used without NEON kernels runs the portable hwy code, which
	// allocates per chunk.
	FillAndCheck(buf []uint16) bool
}

// Mode selects how the vector engine combines its fill and check passes.
type Mode int

const (
	// Fused stores and verifies one chunk at a time and aborts early.
	Fused Mode = iota

	// Separated fills the whole buffer, then checks the whole buffer.
	Separated
)

// String returns the variant name of the mode.
func (m Mode) String() string {
	switch m {
	case Fused:
		return VariantFused
	case Separated:
		return VariantSeparated
	default:
		return "unknown"
	}
}

// Scalar is the element-by-element engine.
type Scalar struct {
	// EarlyExit stops the verification pass at the first mismatch instead of
	// scanning the whole buffer.
	EarlyExit bool
}

// Name implements FillChecker.
func (s Scalar) Name() string {
	if s.EarlyExit {
		return VariantScalarEarlyExit
	}
	return VariantScalar
}

// FillAndCheck implements FillChecker.
func (s Scalar) FillAndCheck(buf []uint16) bool {
	if s.EarlyExit {
		return ScalarFillAndCheckEarlyExit(buf)
	}
	return ScalarFillAndCheck(buf)
}

// Vector is the 128-bit vector engine. It runs the dispatched kernels, which
// are the portable Base* functions unless VectorAvailable reports true. The
// Base* functions allocate per chunk; use New to get an engine that doesn't.
type Vector struct {
	Mode Mode
}

// Name implements FillChecker.
func (v Vector) Name() string {
	return v.Mode.String()
}

// FillAndCheck implements FillChecker.
func (v Vector) FillAndCheck(buf []uint16) bool {
	if v.Mode == Fused {
		return FillAndCheckFused(buf)
	}
	return FillAndCheckSeparated(buf)
}

// Fill is the fill-only half of the separated variant.
func (Vector) Fill(buf []uint16) {
	Fill(buf)
}

// Check is the check-only half of the separated variant. It only reads buf.
func (Vector) Check(buf []uint16) bool {
	return Check(buf)
}

// VectorAvailable reports whether hardware vector kernels were bound at init.
func VectorAvailable() bool {
	return vectorKernels
}

// New returns a Vector engine in the given mode when hardware vector kernels
// are available and the scalar engine otherwise. Call it once and keep the
// result; the choice does not change at runtime.
func New(mode Mode) FillChecker {
	if VectorAvailable() {
		return Vector{Mode: mode}
	}
	return Scalar{}
}

// Variant names understood by Lookup.
const (
	VariantScalar          = "scalar"
	VariantScalarEarlyExit = "scalar-early-exit"
	VariantFused           = "fused"
	VariantSeparated       = "separated"
)

var variants = []string{VariantScalar, VariantScalarEarlyExit, VariantFused, VariantSeparated}

// Variants returns the names accepted by Lookup.
func Variants() []string {
	return slices.Clone(variants)
}

// Lookup resolves a variant name to an engine. Vector variants go through New,
// so fallback is true when a vector variant was substituted by the scalar
// engine. ok is false for unknown names.
func Lookup(name string) (fc FillChecker, fallback bool, ok bool) {
	switch name {
	case VariantScalar:
		return Scalar{}, false, true
	case VariantScalarEarlyExit:
		return Scalar{EarlyExit: true}, false, true
	case VariantFused:
		fc = New(Fused)
	case VariantSeparated:
		fc = New(Separated)
	default:
		return nil, false, false
	}
	_, isScalar := fc.(Scalar)
	return fc, isScalar, true
}
