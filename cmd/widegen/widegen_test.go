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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthNames(t *testing.T) {
	tests := []struct {
		w    width
		name string
		half string
	}{
		{width{laneTypes[0], 128}, "F32x4", "F32x2"},
		{width{laneTypes[0], 512}, "F32x16", "F32x8"},
		{width{laneTypes[1], 256}, "F64x4", "F64x2"},
		{width{laneTypes[2], 512}, "I8x64", "I8x32"},
		{width{laneTypes[9], 128}, "U64x2", "U64x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.w.Name())
			assert.Equal(t, "Reg"+tt.name, tt.w.Reg())
			assert.Equal(t, tt.half, tt.w.Half().Name())
		})
	}
	assert.Len(t, allWidths(), 30)
}

func TestTierRegs(t *testing.T) {
	scalar, _ := findTier("scalar")
	portable, _ := findTier("portable")
	avx2, _ := findTier("avx2")
	f32x8 := width{laneTypes[0], 256}
	i64x2 := width{laneTypes[5], 128}

	assert.Equal(t, "Array[float32, [8]float32]", scalar.Reg(f32x8))
	assert.Equal(t, "Pair[float32, RegF32x4]", portable.Reg(f32x8))
	assert.Equal(t, "F32x8Native", avx2.Reg(f32x8))
	assert.Equal(t, "V128[int64]", portable.Reg(i64x2))
	assert.Equal(t, "V128[int64]", avx2.Reg(i64x2))

	assert.Equal(t, "F32x8", avx2.Natural(laneTypes[0]).Name())
	assert.Equal(t, "F32x4", portable.Natural(laneTypes[0]).Name())
	assert.Equal(t, "U16x8", avx2.Natural(laneTypes[7]).Name())
}

func TestSelectTiers(t *testing.T) {
	all, err := selectTiers(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(tiers))

	one, err := selectTiers([]string{"avx2"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "avx2", one[0].Name)

	_, err = selectTiers([]string{"neon"})
	assert.ErrorContains(t, err, `unknown tier "neon"`)
}

// TestGeneratedFilesUpToDate regenerates every file and compares it with
// the copy checked in to the wide package.
func TestGeneratedFilesUpToDate(t *testing.T) {
	tmpDir := t.TempDir()
	gen := &Generator{OutputDir: tmpDir, Package: "wide", Tiers: tiers}
	require.NoError(t, gen.Run())

	names := []string{"zz_widths.go"}
	for _, tr := range tiers {
		names = append(names, "zz_regs_"+tr.Name+".go")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			got, err := os.ReadFile(filepath.Join(tmpDir, name))
			require.NoError(t, err)
			want, err := os.ReadFile(filepath.Join("..", "..", "wide", name))
			require.NoError(t, err)
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale; run go generate ./wide (-checked-in +generated):\n%s", name, diff)
			}
		})
	}
}

func TestWidthsFileContents(t *testing.T) {
	gen := &Generator{Package: "wide"}
	src := string(gen.widthsFile())

	for _, want := range []string{
		"type F32x8 = Vec[float32, RegF32x8]",
		"type U8x16Mask = Mask[uint8, RegU8x16]",
		"func F64x4RoundInt(v F64x4) I64x4 { return Reinterpret[int64, RegI64x4](NearestInt(v)) }",
		"func F32x16ToBits(v F32x16) U32x16 { return Reinterpret[uint32, RegU32x16](v) }",
		"// I32x16LoadAligned reads 16 lanes from a 64-byte aligned src.",
		"// U32x4Splat returns a U32x4 with every lane set to v.",
	} {
		assert.Contains(t, src, want)
	}
	assert.False(t, strings.Contains(src, "func I32x4RoundInt"), "integer widths have no float conversions")
}
