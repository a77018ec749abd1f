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
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// laneType is one element type a vector can hold.
type laneType struct {
	Go   string // Go type name, e.g. "float32"
	Kind string // "float", "int" or "uint"
	Bits int
}

var laneTypes = []laneType{
	{"float32", "float", 32},
	{"float64", "float", 64},
	{"int8", "int", 8},
	{"int16", "int", 16},
	{"int32", "int", 32},
	{"int64", "int", 64},
	{"uint8", "uint", 8},
	{"uint16", "uint", 16},
	{"uint32", "uint", 32},
	{"uint64", "uint", 64},
}

// vectorBits are the vector sizes generated for every lane type.
var vectorBits = []int{128, 256, 512}

var upper = cases.Upper(language.Und)

// Prefix returns the one-letter alias prefix: F, I or U.
func (l laneType) Prefix() string {
	return upper.String(l.Kind[:1])
}

// Short returns the lane part of alias names, e.g. "F32".
func (l laneType) Short() string {
	return fmt.Sprintf("%s%d", l.Prefix(), l.Bits)
}

// IntTwin returns the signed integer lane type of the same width.
func (l laneType) IntTwin() laneType {
	return lo.Must(lo.Find(laneTypes, func(o laneType) bool { return o.Kind == "int" && o.Bits == l.Bits }))
}

// UintTwin returns the unsigned integer lane type of the same width.
func (l laneType) UintTwin() laneType {
	return lo.Must(lo.Find(laneTypes, func(o laneType) bool { return o.Kind == "uint" && o.Bits == l.Bits }))
}

// width is one concrete vector type.
type width struct {
	Lane laneType
	Bits int
}

func (w width) Lanes() int { return w.Bits / w.Lane.Bits }

// Name returns the alias name, e.g. "F32x4".
func (w width) Name() string { return fmt.Sprintf("%sx%d", w.Lane.Short(), w.Lanes()) }

// Reg returns the representation alias name, e.g. "RegF32x4".
func (w width) Reg() string { return "Reg" + w.Name() }

// Half returns the width with half as many lanes.
func (w width) Half() width { return width{Lane: w.Lane, Bits: w.Bits / 2} }

// With returns the width of the same size holding lane type l.
func (w width) With(l laneType) width { return width{Lane: l, Bits: w.Bits} }

// Article returns the indefinite article for the alias name in doc
// comments.
func (w width) Article() string {
	if w.Lane.Prefix() == "U" {
		return "a"
	}
	return "an"
}

// allWidths returns every generated vector type, grouped by lane type.
func allWidths() []width {
	return lo.FlatMap(laneTypes, func(l laneType, _ int) []width {
		return lo.Map(vectorBits, func(bits int, _ int) width {
			return width{Lane: l, Bits: bits}
		})
	})
}

// tier describes one build configuration.
type tier struct {
	Name     string
	BuildTag string
	// Native maps an alias name to the hardware register type backing it.
	Native map[string]string
	// Scalar selects the Array representation for every width.
	Scalar bool
}

var tiers = []tier{
	{
		Name:     "scalar",
		BuildTag: "noasm",
		Scalar:   true,
	},
	{
		Name:     "portable",
		BuildTag: "!noasm && !(amd64 && goexperiment.simd && amd64.v3)",
	},
	{
		Name:     "avx2",
		BuildTag: "amd64 && goexperiment.simd && amd64.v3 && !noasm",
		Native: map[string]string{
			"F32x8": "F32x8Native",
			"F64x4": "F64x4Native",
			"I32x8": "I32x8Native",
		},
	},
}

// Reg returns the representation expression for w under t.
func (t tier) Reg(w width) string {
	if native, ok := t.Native[w.Name()]; ok {
		return native
	}
	switch {
	case t.Scalar:
		return fmt.Sprintf("Array[%s, [%d]%s]", w.Lane.Go, w.Lanes(), w.Lane.Go)
	case w.Bits == 128:
		return fmt.Sprintf("V128[%s]", w.Lane.Go)
	default:
		return fmt.Sprintf("Pair[%s, %s]", w.Lane.Go, w.Half().Reg())
	}
}

// Natural returns the widest width for l that t backs without
// composition.
func (t tier) Natural(l laneType) width {
	best := width{Lane: l, Bits: 128}
	for _, w := range allWidths() {
		if _, ok := t.Native[w.Name()]; ok && w.Lane == l && w.Bits > best.Bits {
			best = w
		}
	}
	return best
}

func findTier(name string) (tier, bool) {
	return lo.Find(tiers, func(t tier) bool { return t.Name == name })
}

func tierNames() []string {
	return lo.Map(tiers, func(t tier, _ int) string { return t.Name })
}
