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

package wide

import (
	"os"
	"strconv"
)

//go:generate go run ../cmd/widegen --out .

// DispatchLevel identifies the physical representation tier a build uses.
// It is fixed at compile time by build tags; nothing probes the CPU.
type DispatchLevel int

const (
	// DispatchScalar indicates the noasm build: every vector is an Array
	// processed one lane at a time.
	DispatchScalar DispatchLevel = iota

	// DispatchPortable128 indicates the default build: 128-bit vectors are
	// V128 word registers and wider vectors are Pairs of them.
	DispatchPortable128

	// DispatchAVX2 indicates amd64 with GOEXPERIMENT=simd and GOAMD64=v3:
	// 256-bit float32, float64 and int32 vectors are AVX registers.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchPortable128:
		return "portable128"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// NativeWidth returns the widest register in bytes that the level backs
// without composition.
func (d DispatchLevel) NativeWidth() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchPortable128:
		return 16
	default:
		return 16
	}
}

// CurrentLevel returns the tier this binary was built for.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the native register width in bytes.
// For example: 16 for the portable and scalar builds, 32 for AVX2.
func CurrentWidth() int {
	return currentLevel.NativeWidth()
}

// CurrentName returns a human-readable name for the current tier.
// For example: "avx2", "portable128", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// MaxLanes returns the number of lanes of type T in one native register
// of the current tier.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	return CurrentWidth() / sizeOf[T]()
}

// envBool reads a boolean environment switch. Any non-empty value that
// does not parse as a bool counts as true.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// EnvInt reads an integer environment setting, returning def when the
// variable is unset or malformed.
func EnvInt(name string, def int) int {
	val := os.Getenv(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		Logger().Warn("ignoring malformed environment setting", "name", name, "value", val, "err", err)
		return def
	}
	return n
}
