package main

import (
	"github.com/klauspost/cpuid/v2"
)

// cpuName describes the host processor for benchmark and info output.
func cpuName() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return cpuid.CPU.VendorString
}

// hasSIMD128 reports whether the host has 128-bit integer SIMD (SSE2 or ASIMD), which a lane-pair round would need.
func hasSIMD128() bool {
	return cpuid.CPU.Has(cpuid.SSE2) || cpuid.CPU.Has(cpuid.ASIMD)
}
