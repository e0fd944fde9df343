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
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fillcheck/hwy"
	"github.com/ajroetker/go-fillcheck/hwy/contrib/fill"
)

func TestRun(t *testing.T) {
	plan := Plan{Side: 9, Variants: fill.Variants(), Repeat: 2}
	report, err := Run(plan)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)
	require.Equal(t, hwy.CurrentName(), report.Level)
	require.Equal(t, 16, report.Width)
	require.Equal(t, 81, report.Elements)
	require.Len(t, report.Results, len(plan.Variants)*plan.Repeat)

	for i, res := range report.Results {
		require.Equal(t, plan.Variants[i/plan.Repeat], res.Variant)
		require.Equal(t, i%plan.Repeat+1, res.Repeat)
		require.True(t, res.OK, "variant %s", res.Variant)
		require.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))

		switch res.Variant {
		case fill.VariantScalar, fill.VariantScalarEarlyExit:
			require.Equal(t, "scalar", res.Engine)
			require.False(t, res.Fallback)
		default:
			require.Equal(t, !fill.VectorAvailable(), res.Fallback)
			if fill.VectorAvailable() {
				require.Equal(t, "vector", res.Engine)
			} else {
				require.Equal(t, "scalar", res.Engine)
			}
		}
	}

	require.Len(t, report.Summaries, len(plan.Variants))
	for i, s := range report.Summaries {
		require.Equal(t, plan.Variants[i], s.Variant)
		require.Equal(t, 2, s.Runs)
		require.True(t, s.AllOK)
		require.LessOrEqual(t, s.Min, s.Mean)
	}
}

func TestRunEmptyBuffer(t *testing.T) {
	report, err := Run(Plan{Side: 0, Variants: []string{"scalar", "fused"}, Repeat: 1})
	require.NoError(t, err)
	require.Zero(t, report.Elements)
	for _, res := range report.Results {
		require.True(t, res.OK)
	}
}

func TestRunInvalidPlan(t *testing.T) {
	_, err := Run(Plan{Side: 4, Variants: []string{"sse2"}, Repeat: 1})
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestRunOversizedPlan(t *testing.T) {
	report, err := Run(Plan{Side: int(math.Sqrt(math.MaxInt)), Variants: []string{"scalar"}, Repeat: 1})
	require.ErrorContains(t, err, "more than")
	require.Nil(t, report)
}

func TestSummarizeSkipsMissing(t *testing.T) {
	results := []Result{
		{Variant: "scalar", OK: true, Elapsed: 30},
		{Variant: "scalar", OK: false, Elapsed: 10},
	}
	got := summarize([]string{"scalar", "fused"}, results)
	require.Equal(t, []Summary{{Variant: "scalar", Runs: 2, AllOK: false, Min: 10, Mean: 20}}, got)
}
