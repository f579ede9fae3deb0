package sequence_test

import (
	"testing"

	"github.com/katalvlaran/regpoly/sequence"
)

// benchmarkMaxEfficiency runs the selection over a sequence of length m-2.
func benchmarkMaxEfficiency(b *testing.B, m int) {
	s, err := sequence.New(m, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.MaxEfficiency(); err != nil {
			b.Fatalf("MaxEfficiency failed: %v", err)
		}
	}
}

// BenchmarkMaxEfficiency_Small benchmarks m=16.
func BenchmarkMaxEfficiency_Small(b *testing.B) { benchmarkMaxEfficiency(b, 16) }

// BenchmarkMaxEfficiency_Large benchmarks m=4096.
func BenchmarkMaxEfficiency_Large(b *testing.B) { benchmarkMaxEfficiency(b, 4096) }
