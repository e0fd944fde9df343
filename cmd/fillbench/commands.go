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

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-fillcheck/hwy"
	"github.com/ajroetker/go-fillcheck/hwy/contrib/fill"
	"github.com/ajroetker/go-fillcheck/internal/bench"
)

type runOptions struct {
	side     int
	variants string
	repeat   int
	config   string
	format   string
}

func (o *runOptions) addFlags(fs *pflag.FlagSet) {
	def := bench.DefaultPlan()
	fs.IntVarP(&o.side, "side", "n", def.Side, "side length of the square buffer (elements = side*side)")
	fs.StringVar(&o.variants, "variants", strings.Join(def.Variants, ","),
		"comma-separated variants ("+strings.Join(fill.Variants(), ",")+")")
	fs.IntVar(&o.repeat, "repeat", def.Repeat, "runs per variant, each on a fresh zeroed buffer")
	fs.StringVar(&o.config, "config", "", "YAML or JSON plan file; explicit flags override it")
	fs.StringVar(&o.format, "format", bench.FormatText, "report format (text, yaml, json)")
}

// plan builds the benchmark plan: defaults, then the config file, then any
// flag set on the command line.
func (o *runOptions) plan(fs *pflag.FlagSet) (bench.Plan, error) {
	p := bench.DefaultPlan()
	if o.config != "" {
		var err error
		if p, err = bench.LoadPlan(o.config); err != nil {
			return bench.Plan{}, err
		}
	}
	if fs.Changed("side") {
		p.Side = o.side
	}
	if fs.Changed("variants") {
		p.Variants = bench.ParseVariants(o.variants)
	}
	if fs.Changed("repeat") {
		p.Repeat = o.repeat
	}
	return p, p.Validate()
}

func (o *runOptions) run(cmd *cobra.Command, _ []string) error {
	plan, err := o.plan(cmd.Flags())
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "fillbench: ", 0)
	if !fill.VectorAvailable() {
		for _, name := range plan.Variants {
			if _, fallback, _ := fill.Lookup(name); fallback {
				logger.Printf("variant %q: no vector kernels on %s, using the scalar engine", name, hwy.CurrentName())
			}
		}
	}

	report, err := bench.Run(plan)
	if err != nil {
		return err
	}
	return bench.Write(cmd.OutOrStdout(), report, o.format)
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the fill-and-check variants",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and the engines it selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level: %s, Width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "uint16 lanes: %d\n", hwy.MaxLanes[uint16]())
			fmt.Fprintf(out, "vector kernels: %t\n", fill.VectorAvailable())
			fmt.Fprintf(out, "fused engine: %s\n", fill.New(fill.Fused).Name())
			fmt.Fprintf(out, "separated engine: %s\n", fill.New(fill.Separated).Name())
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:           "fillbench",
		Short:         "Compare scalar and NEON fill-and-check of uint16 buffers",
		Args:          cobra.NoArgs,
		RunE:          opts.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts.addFlags(root.Flags())
	root.AddCommand(newRunCmd(), newInfoCmd())
	return root
}
