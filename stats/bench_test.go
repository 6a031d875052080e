package stats_test

import (
	"testing"

	"github.com/katalvlaran/ternbet/randctx"
	"github.com/katalvlaran/ternbet/stats"
)

func benchData(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i%17) * 0.5
	}

	return out
}

func BenchmarkEntropy(b *testing.B) {
	data := benchData(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Entropy(data)
	}
}

func BenchmarkMovingAverage(b *testing.B) {
	data := benchData(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stats.MovingAverage(data, 50)
	}
}

func BenchmarkBootstrap(b *testing.B) {
	rc := randctx.NewSeeded(1)
	data := benchData(200)
	mean := func(xs []float64) float64 {
		m, _ := stats.Mean(xs)

		return m
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stats.Bootstrap(rc, data, 50, mean)
	}
}
