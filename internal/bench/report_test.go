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
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func sampleReport() *Report {
	return &Report{
		RunID:    "4c1f5f0e-0000-4000-8000-000000000000",
		Level:    "neon",
		Width:    16,
		Side:     512,
		Elements: 262144,
		Results: []Result{
			{Variant: "scalar", Engine: "scalar", Repeat: 1, OK: true, Elapsed: 1500 * time.Microsecond},
			{Variant: "separated", Engine: "scalar", Fallback: true, Repeat: 1, OK: true, Elapsed: 2 * time.Millisecond},
		},
		Summaries: []Summary{
			{Variant: "scalar", Runs: 1, AllOK: true, Min: 1500 * time.Microsecond, Mean: 1500 * time.Microsecond},
			{Variant: "separated", Runs: 1, AllOK: true, Min: 2 * time.Millisecond, Mean: 2 * time.Millisecond},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport()))

	want := `--- Array Fill and Verification Performance Measurement ---
Array size: 512x512 (total 262144 elements)
SIMD level: neon (16-byte registers)

scalar function result: true, time: 1.5ms
separated function result: true, time: 2ms [scalar fallback]
------------------------------------
`
	require.Equal(t, want, buf.String())
}

func TestWriteTextRepeated(t *testing.T) {
	r := sampleReport()
	r.Results = []Result{
		{Variant: "fused", Engine: "vector", Repeat: 1, OK: true, Elapsed: 3 * time.Millisecond},
		{Variant: "fused", Engine: "vector", Repeat: 2, OK: true, Elapsed: time.Millisecond},
	}
	r.Summaries = summarize([]string{"fused"}, r.Results)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	require.Contains(t, buf.String(), "fused function result: true, time: 3ms (run 1)\n")
	require.Contains(t, buf.String(), "fused function result: true, time: 1ms (run 2)\n")
	require.Contains(t, buf.String(), "fused: 2 runs, all ok: true, min 1ms, mean 2ms\n")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatYAML))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, *sampleReport(), got)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), "JSON"))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	require.Equal(t, "neon", fields["level"])
	require.Len(t, fields["results"], 2)
}

func TestWriteUnknownFormat(t *testing.T) {
	require.ErrorContains(t, Write(&bytes.Buffer{}, sampleReport(), "csv"), "unknown format")
}
