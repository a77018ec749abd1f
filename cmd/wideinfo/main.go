// Copyright 2025 go-wide Authors
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

// Command wideinfo prints the vector tier this binary was built for and
// the vector features of the host it runs on.
//
// Usage:
//
//	wideinfo
//	wideinfo --lanes=false
//	wideinfo -v
//
// The tier is fixed at build time, so the output names the build flags
// that would select a better tier when the host supports one.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-wide/go-wide/wide"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	lanes   bool
	missing bool
}

func newRootCmd() *cobra.Command {
	var (
		opts    options
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "wideinfo",
		Short:        "Print the build tier and host vector features",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				wide.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return render(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.lanes, "lanes", true, "print lanes per native register for each lane type")
	cmd.Flags().BoolVar(&opts.missing, "missing", false, "list only host features that are absent")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

// buildHint returns the build settings that select level.
func buildHint(level wide.DispatchLevel) string {
	switch level {
	case wide.DispatchAVX2:
		return "GOAMD64=v3 GOEXPERIMENT=simd"
	case wide.DispatchScalar:
		return "-tags noasm"
	default:
		return "default build"
	}
}

type laneRow struct {
	name  string
	lanes int
}

func laneRows() []laneRow {
	return []laneRow{
		{"float32", wide.MaxLanes[float32]()},
		{"float64", wide.MaxLanes[float64]()},
		{"int8", wide.MaxLanes[int8]()},
		{"int16", wide.MaxLanes[int16]()},
		{"int32", wide.MaxLanes[int32]()},
		{"int64", wide.MaxLanes[int64]()},
		{"uint8", wide.MaxLanes[uint8]()},
		{"uint16", wide.MaxLanes[uint16]()},
		{"uint32", wide.MaxLanes[uint32]()},
		{"uint64", wide.MaxLanes[uint64]()},
	}
}

func render(out io.Writer, opts options) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "GOOS:\t%s\n", runtime.GOOS)
	fmt.Fprintf(tw, "GOARCH:\t%s\n", runtime.GOARCH)
	fmt.Fprintf(tw, "NumCPU:\t%d\n", runtime.NumCPU())
	fmt.Fprintln(tw)

	level := wide.CurrentLevel()
	fmt.Fprintf(tw, "Build tier:\t%s\n", wide.CurrentName())
	fmt.Fprintf(tw, "Native width:\t%d bytes\n", wide.CurrentWidth())
	fmt.Fprintf(tw, "Selected by:\t%s\n", buildHint(level))
	if best := wide.BestHostLevel(); best > level {
		fmt.Fprintf(tw, "Host supports:\t%s (rebuild with %s)\n", best, buildHint(best))
	} else if !wide.HostSupports(level) {
		fmt.Fprintf(tw, "Warning:\thost cannot run the %s tier\n", level)
	}

	if opts.lanes {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Lane type\tLanes per register")
		for _, r := range laneRows() {
			fmt.Fprintf(tw, "%s\t%d\n", r.name, r.lanes)
		}
	}

	features := wide.HostFeatures()
	if opts.missing {
		features = lo.Reject(features, func(f wide.HostFeature, _ int) bool { return f.Present })
	}
	wide.Logger().Debug("host features", "arch", runtime.GOARCH, "listed", len(features))
	if len(features) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Feature\tPresent\tUse")
		for _, f := range features {
			fmt.Fprintf(tw, "%s\t%v\t%s\n", f.Name, f.Present, f.Note)
		}
	}
	return tw.Flush()
}
