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
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostFeature is one CPU feature bit of the machine running the process.
type HostFeature struct {
	Name    string
	Present bool
	Note    string
}

// HostFeatures reports the vector-related CPU features of the running
// machine. It is informational only: the tier a binary uses is fixed when
// it is built and never changes with the host.
func HostFeatures() []HostFeature {
	switch runtime.GOARCH {
	case "amd64":
		return []HostFeature{
			{"SSE2", cpu.X86.HasSSE2, "x86-64 baseline"},
			{"SSE41", cpu.X86.HasSSE41, "round, blendv"},
			{"AVX", cpu.X86.HasAVX, "256-bit float"},
			{"AVX2", cpu.X86.HasAVX2, "256-bit integer"},
			{"FMA", cpu.X86.HasFMA, "fused multiply-add"},
			{"AVX512F", cpu.X86.HasAVX512F, "512-bit foundation"},
			{"AVX512VL", cpu.X86.HasAVX512VL, "512-bit ops on narrow registers"},
		}
	case "arm64":
		return []HostFeature{
			{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"FP", cpu.ARM64.HasFP, "floating point"},
			{"SVE", cpu.ARM64.HasSVE, "scalable vectors"},
			{"SVE2", cpu.ARM64.HasSVE2, "scalable vectors v2"},
		}
	}
	return nil
}

// HostSupports reports whether the running machine could execute a
// binary built for level. A binary built for DispatchAVX2 on a host
// without AVX2 and FMA faults on its first vector instruction.
func HostSupports(level DispatchLevel) bool {
	switch level {
	case DispatchAVX2:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX2 && cpu.X86.HasFMA
	default:
		return true
	}
}

// BestHostLevel returns the most capable tier the running machine could
// execute. A binary rebuilt with the matching tags would use it.
func BestHostLevel() DispatchLevel {
	if HostSupports(DispatchAVX2) {
		return DispatchAVX2
	}
	return DispatchPortable128
}
