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

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"sigs.k8s.io/yaml"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write renders r to w in the named format.
func Write(w io.Writer, r *Report, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return WriteText(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatYAML, FormatJSON)
	}
}

// WriteText prints the console report: a header with the buffer shape, one
// line per engine call and, when variants repeat, a min/mean line per variant.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder
	b.WriteString("--- Array Fill and Verification Performance Measurement ---\n")
	fmt.Fprintf(&b, "Array size: %dx%d (total %d elements)\n", r.Side, r.Side, r.Elements)
	fmt.Fprintf(&b, "SIMD level: %s (%d-byte registers)\n\n", r.Level, r.Width)

	repeated := lo.ContainsBy(r.Summaries, func(s Summary) bool { return s.Runs > 1 })
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s function result: %t, time: %v", res.Variant, res.OK, res.Elapsed)
		if repeated {
			fmt.Fprintf(&b, " (run %d)", res.Repeat)
		}
		if res.Fallback {
			b.WriteString(" [scalar fallback]")
		}
		b.WriteByte('\n')
	}

	if repeated {
		b.WriteByte('\n')
		for _, s := range r.Summaries {
			fmt.Fprintf(&b, "%s: %d runs, all ok: %t, min %v, mean %v\n", s.Variant, s.Runs, s.AllOK, s.Min, s.Mean)
		}
	}

	b.WriteString("------------------------------------\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
