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
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ajroetker/go-fillcheck/hwy"
	"github.com/ajroetker/go-fillcheck/hwy/contrib/fill"
)

// Result is one timed engine call.
type Result struct {
	Variant string `json:"variant"`
	// Engine is "vector" or "scalar", the engine that actually ran.
	Engine string `json:"engine"`
	// Fallback is set when a vector variant ran on the scalar engine.
	Fallback bool          `json:"fallback"`
	Repeat   int           `json:"repeat"`
	OK       bool          `json:"ok"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Summary aggregates the repetitions of one variant.
type Summary struct {
	Variant string        `json:"variant"`
	Runs    int           `json:"runs"`
	AllOK   bool          `json:"all_ok"`
	Min     time.Duration `json:"min_ns"`
	Mean    time.Duration `json:"mean_ns"`
}

// Report is the outcome of running a Plan.
type Report struct {
	RunID     string    `json:"run_id"`
	Level     string    `json:"level"`
	Width     int       `json:"width"`
	Side      int       `json:"side"`
	Elements  int       `json:"elements"`
	Results   []Result  `json:"results"`
	Summaries []Summary `json:"summaries"`
}

// Run validates plan and times every variant on a freshly zeroed buffer of
// plan.Elements() values, Repeat times each, in plan order.
func Run(plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    uuid.New().String(),
		Level:    hwy.CurrentName(),
		Width:    hwy.CurrentWidth(),
		Side:     plan.Side,
		Elements: plan.Elements(),
	}

	for _, name := range plan.Variants {
		fc, fallback, _ := fill.Lookup(name)
		for rep := 1; rep <= plan.Repeat; rep++ {
			buf := make([]uint16, report.Elements)

			start := time.Now()
			ok := fc.FillAndCheck(buf)
			elapsed := time.Since(start)

			report.Results = append(report.Results, Result{
				Variant:  name,
				Engine:   engineKind(fc),
				Fallback: fallback,
				Repeat:   rep,
				OK:       ok,
				Elapsed:  elapsed,
			})
		}
	}

	report.Summaries = summarize(plan.Variants, report.Results)
	return report, nil
}

func engineKind(fc fill.FillChecker) string {
	if _, ok := fc.(fill.Vector); ok {
		return "vector"
	}
	return "scalar"
}

func summarize(variants []string, results []Result) []Summary {
	byVariant := lo.GroupBy(results, func(r Result) string { return r.Variant })

	summaries := make([]Summary, 0, len(variants))
	for _, name := range variants {
		runs := byVariant[name]
		if len(runs) == 0 {
			continue
		}
		total := lo.SumBy(runs, func(r Result) time.Duration { return r.Elapsed })
		fastest := lo.MinBy(runs, func(a, b Result) bool { return a.Elapsed < b.Elapsed })
		summaries = append(summaries, Summary{
			Variant: name,
			Runs:    len(runs),
			AllOK:   lo.EveryBy(runs, func(r Result) bool { return r.OK }),
			Min:     fastest.Elapsed,
			Mean:    total / time.Duration(len(runs)),
		})
	}
	return summaries
}
