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

// Command widegen generates the vector type aliases of the wide package.
//
// For every lane type and vector size it writes the representation alias
// of each build tier (zz_regs_<tier>.go) and the tier-independent vector
// aliases and constructors (zz_widths.go).
//
// Usage:
//
//	widegen --out ./wide
//	widegen --out ./wide --tier portable --tier avx2
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/widegen --out .
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-wide/go-wide/wide"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputDir string
		pkg       string
		tierList  []string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:           "widegen",
		Short:         "Generate wide vector type aliases",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				wide.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
			}
			selected, err := selectTiers(tierList)
			if err != nil {
				return err
			}
			gen := &Generator{OutputDir: outputDir, Package: pkg, Tiers: selected}
			if err := gen.Run(); err != nil {
				return fmt.Errorf("widegen: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputDir, "out", ".", "output directory")
	cmd.Flags().StringVar(&pkg, "package", "wide", "output package name")
	cmd.Flags().StringSliceVar(&tierList, "tier", nil,
		"tiers to generate ("+strings.Join(tierNames(), ",")+"); default all")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generated files")
	return cmd
}

func selectTiers(names []string) ([]tier, error) {
	if len(names) == 0 {
		return tiers, nil
	}
	var out []tier
	for _, name := range names {
		t, ok := findTier(name)
		if !ok {
			return nil, fmt.Errorf("unknown tier %q (want one of %s)", name, strings.Join(tierNames(), ", "))
		}
		out = append(out, t)
	}
	return out, nil
}
