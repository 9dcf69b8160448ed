// SPDX-License-Identifier: MIT

package harness

import (
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// HostFeatures describes the machine a report was produced on: GOARCH,
// logical CPU count and the SIMD features relevant to float64 loops.
func HostFeatures() []string {
	feats := []string{runtime.GOARCH, strconv.Itoa(runtime.NumCPU()) + "cpu"}

	switch runtime.GOARCH {
	case "amd64", "386":
		feats = appendIf(feats, cpu.X86.HasSSE42, "sse4.2")
		feats = appendIf(feats, cpu.X86.HasAVX2, "avx2")
		feats = appendIf(feats, cpu.X86.HasFMA, "fma")
		feats = appendIf(feats, cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		feats = appendIf(feats, cpu.ARM64.HasASIMD, "asimd")
		feats = appendIf(feats, cpu.ARM64.HasSVE, "sve")
	}

	return feats
}

func appendIf(feats []string, ok bool, name string) []string {
	if ok {
		return append(feats, name)
	}

	return feats
}
