package main

import (
	"flag"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/codahale/keccak1600/hazmat/keccak"
)

const defaultBenchDuration = time.Second

type benchResult struct {
	Name string
	testing.BenchmarkResult
}

type benchCase struct {
	name   string
	states int
	run    func(s *[4][keccak.StateSize]byte)
}

//nolint:gochecknoglobals // fixed table
var benchCases = []benchCase{
	{"F1600", 1, func(s *[4][keccak.StateSize]byte) { keccak.F1600(&s[0]) }},
	{"P1600", 1, func(s *[4][keccak.StateSize]byte) { keccak.P1600(&s[0]) }},
	{"F1600x2", 2, func(s *[4][keccak.StateSize]byte) { keccak.F1600x2(&s[0], &s[1]) }},
	{"F1600x4", 4, func(s *[4][keccak.StateSize]byte) { keccak.F1600x4(&s[0], &s[1], &s[2], &s[3]) }},
}

// setBenchTime points testing.Benchmark at d instead of its one second default.
func setBenchTime(d time.Duration) error {
	testing.Init()
	return flag.Set("test.benchtime", d.String())
}

// bench runs each case for roughly d and logs its throughput.
func bench(log *zerolog.Logger, d time.Duration) ([]benchResult, error) {
	if d <= 0 {
		return nil, errors.Errorf("duration must be positive, got %s", d)
	}
	if err := setBenchTime(d); err != nil {
		return nil, errors.Wrap(err, "failed to set benchmark duration")
	}

	log.Info().Str("implementation", keccak.Implementation()).Int("lanes", keccak.Lanes).
		Str("cpu", cpuName()).Dur("duration", d).Msg("Starting benchmarks")

	results := make([]benchResult, 0, len(benchCases))
	for _, bc := range benchCases {
		res := testing.Benchmark(func(b *testing.B) {
			var states [4][keccak.StateSize]byte
			b.ReportAllocs()
			b.SetBytes(int64(bc.states) * keccak.StateSize)
			for b.Loop() {
				bc.run(&states)
			}
		})
		if res.N == 0 {
			return nil, errors.Errorf("benchmark %s did not run", bc.name)
		}
		results = append(results, benchResult{Name: bc.name, BenchmarkResult: res})

		log.Info().Str("op", bc.name).Int("iterations", res.N).
			Float64("MB/s", float64(res.Bytes)*float64(res.N)/1e6/res.T.Seconds()).
			Int64("ns/op", res.NsPerOp()).
			Int64("allocs/op", res.AllocsPerOp()).
			Msg("Benchmark")
	}
	return results, nil
}
