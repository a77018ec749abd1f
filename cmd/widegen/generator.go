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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/go-wide/go-wide/wide"
)

// Generator writes the per-tier representation files and the
// tier-independent width aliases for the wide package.
type Generator struct {
	OutputDir string
	Package   string
	Tiers     []tier
}

// Run generates every file and writes it under OutputDir.
func (g *Generator) Run() error {
	for _, t := range g.Tiers {
		name := fmt.Sprintf("zz_regs_%s.go", t.Name)
		if err := g.write(name, g.regsFile(t)); err != nil {
			return err
		}
	}
	return g.write("zz_widths.go", g.widthsFile())
}

func (g *Generator) write(name string, src []byte) error {
	path := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", name, err)
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	wide.Logger().Info("generated", "file", path, "bytes", len(formatted))
	return nil
}

func (g *Generator) regsFile(t tier) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by widegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "//go:build %s\n\n", t.BuildTag)
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "// Representations of the %s tier.\n\n", t.Name)
	for _, w := range allWidths() {
		fmt.Fprintf(&buf, "type %s = %s\n", w.Reg(), t.Reg(w))
	}
	fmt.Fprintf(&buf, "\n// Natural-width vectors of the %s tier: the widest vector of each\n", t.Name)
	fmt.Fprintf(&buf, "// lane type that needs no composition.\n\n")
	for _, l := range laneTypes {
		fmt.Fprintf(&buf, "type %s = %s\n", l.Short(), t.Natural(l).Name())
	}
	fmt.Fprintf(&buf, "\n// Representations of the natural-width vectors.\n\n")
	for _, l := range laneTypes {
		fmt.Fprintf(&buf, "type Reg%s = %s\n", l.Short(), t.Natural(l).Reg())
	}
	return buf.Bytes()
}

func (g *Generator) widthsFile() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by widegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)
	for _, w := range allWidths() {
		g.widthDecls(&buf, w)
	}
	return buf.Bytes()
}

func (g *Generator) widthDecls(buf *bytes.Buffer, w width) {
	name, reg, lane, n := w.Name(), w.Reg(), w.Lane.Go, w.Lanes()
	align := min(w.Bits/8, 64)

	fmt.Fprintf(buf, "\n// %s is a vector of %d %s lanes.\n", name, n, lane)
	fmt.Fprintf(buf, "type %s = Vec[%s, %s]\n", name, lane, reg)
	fmt.Fprintf(buf, "\n// %sMask is the comparison mask of %s.\n", name, name)
	fmt.Fprintf(buf, "type %sMask = Mask[%s, %s]\n", name, lane, reg)
	fmt.Fprintf(buf, "\n// %sSplat returns %s %s with every lane set to v.\n", name, w.Article(), name)
	fmt.Fprintf(buf, "func %sSplat(v %s) %s { return Set[%s, %s](v) }\n", name, lane, name, lane, reg)
	fmt.Fprintf(buf, "\n// %sZero returns %s %s with every lane zero.\n", name, w.Article(), name)
	fmt.Fprintf(buf, "func %sZero() %s { return Zero[%s, %s]() }\n", name, name, lane, reg)
	fmt.Fprintf(buf, "\n// %sLoad reads %d lanes from src.\n", name, n)
	fmt.Fprintf(buf, "func %sLoad(src []%s) %s { return Load[%s, %s](src) }\n", name, lane, name, lane, reg)
	fmt.Fprintf(buf, "\n// %sLoadAligned reads %d lanes from a %d-byte aligned src.\n", name, n, align)
	fmt.Fprintf(buf, "func %sLoadAligned(src []%s) %s { return LoadAligned[%s, %s](src) }\n", name, lane, name, lane, reg)
	fmt.Fprintf(buf, "\n// %sFromArray converts an array to %s %s, element i to lane i.\n", name, w.Article(), name)
	fmt.Fprintf(buf, "func %sFromArray(a [%d]%s) %s { return Load[%s, %s](a[:]) }\n", name, n, lane, name, lane, reg)
	fmt.Fprintf(buf, "\n// %sToArray converts %s %s to an array, lane i to element i.\n", name, w.Article(), name)
	fmt.Fprintf(buf, "func %sToArray(v %s) [%d]%s {\n", name, name, n, lane)
	fmt.Fprintf(buf, "\tvar out [%d]%s\n\tStore(v, out[:])\n\treturn out\n}\n", n, lane)

	if w.Lane.Kind != "float" {
		return
	}
	iw, uw := w.With(w.Lane.IntTwin()), w.With(w.Lane.UintTwin())
	fmt.Fprintf(buf, "\n// %sRoundInt rounds each lane half to even into %s %s.\n", name, iw.Article(), iw.Name())
	fmt.Fprintf(buf, "// NaN and out-of-range lanes give math.MinInt%d.\n", w.Lane.Bits)
	fmt.Fprintf(buf, "func %sRoundInt(v %s) %s { return Reinterpret[%s, %s](NearestInt(v)) }\n",
		name, name, iw.Name(), iw.Lane.Go, iw.Reg())
	fmt.Fprintf(buf, "\n// %sTruncInt rounds each lane toward zero into %s %s.\n", name, iw.Article(), iw.Name())
	fmt.Fprintf(buf, "func %sTruncInt(v %s) %s { return Reinterpret[%s, %s](TruncInt(v)) }\n",
		name, name, iw.Name(), iw.Lane.Go, iw.Reg())
	fmt.Fprintf(buf, "\n// %sFromInt converts each lane of %s %s to %s.\n", name, iw.Article(), iw.Name(), lane)
	fmt.Fprintf(buf, "func %sFromInt(v %s) %s { return IntToFloat(Reinterpret[%s, %s](v)) }\n",
		name, iw.Name(), name, lane, reg)
	fmt.Fprintf(buf, "\n// %sToBits reinterprets the lanes of v as %s bit patterns.\n", name, uw.Lane.Go)
	fmt.Fprintf(buf, "func %sToBits(v %s) %s { return Reinterpret[%s, %s](v) }\n",
		name, name, uw.Name(), uw.Lane.Go, uw.Reg())
	fmt.Fprintf(buf, "\n// %sFromBits reinterprets %s bit patterns as %s lanes.\n", name, uw.Lane.Go, lane)
	fmt.Fprintf(buf, "func %sFromBits(v %s) %s { return Reinterpret[%s, %s](v) }\n",
		name, uw.Name(), name, lane, reg)
}
