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

// Package bench times the fill-and-check engines on zeroed buffers and
// reports the results.
package bench

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/samber/lo"
	"sigs.k8s.io/yaml"

	"github.com/ajroetker/go-fillcheck/hwy/contrib/fill"
)

// DefaultSide is the side length of the default square buffer (512x512).
const DefaultSide = 512

// ErrUnknownVariant is returned for variant names fill.Lookup does not know.
var ErrUnknownVariant = errors.New("unknown variant")

// Plan describes one benchmark invocation. The buffer holds Side*Side
// elements and every variant runs Repeat times on a freshly zeroed buffer.
type Plan struct {
	Side     int      `json:"side"`
	Variants []string `json:"variants"`
	Repeat   int      `json:"repeat"`
}

// MaxElements caps the buffer a plan may request at 1 GiB of uint16.
const MaxElements = 1 << 29

// DefaultPlan returns a 512x512 plan running the scalar, fused and separated
// variants once each.
func DefaultPlan() Plan {
	return Plan{
		Side:     DefaultSide,
		Variants: []string{fill.VariantScalar, fill.VariantFused, fill.VariantSeparated},
		Repeat:   1,
	}
}

// Elements returns the number of buffer elements, Side squared.
func (p Plan) Elements() int {
	return p.Side * p.Side
}

// Validate checks the plan before anything is allocated.
func (p Plan) Validate() error {
	if p.Side < 0 {
		return fmt.Errorf("side must be non-negative, got %d", p.Side)
	}
	if p.Side > 0 && p.Side > math.MaxInt/p.Side {
		return fmt.Errorf("side %d overflows the element count", p.Side)
	}
	if n := p.Elements(); n > MaxElements {
		return fmt.Errorf("side %d needs %d elements, more than the %d a buffer may hold", p.Side, n, MaxElements)
	}
	if p.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", p.Repeat)
	}
	if len(p.Variants) == 0 {
		return errors.New("no variants selected")
	}
	for _, name := range p.Variants {
		if _, _, ok := fill.Lookup(name); !ok {
			return fmt.Errorf("%w %q (known: %s)", ErrUnknownVariant, name, strings.Join(fill.Variants(), ", "))
		}
	}
	return nil
}

// ParsePlan decodes a YAML or JSON plan. Fields missing from data keep their
// DefaultPlan values; unknown fields are rejected.
func ParsePlan(data []byte) (Plan, error) {
	p := DefaultPlan()
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Plan{}, fmt.Errorf("decoding plan: %w", err)
	}
	p.Variants = normalizeVariants(p.Variants)
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// LoadPlan reads and decodes the plan file at path.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseVariants splits a comma-separated variant list, dropping blanks and
// duplicates while keeping the first occurrence order.
func ParseVariants(s string) []string {
	return normalizeVariants(strings.Split(s, ","))
}

func normalizeVariants(names []string) []string {
	trimmed := lo.Map(names, func(name string, _ int) string {
		return strings.ToLower(strings.TrimSpace(name))
	})
	return lo.Uniq(lo.Filter(trimmed, func(name string, _ int) bool {
		return name != ""
	}))
}
