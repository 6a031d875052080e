// Package stats - bootstrap resampling.
//
// Bootstrap is the one statistics routine that consumes randomness; its
// draws route through *randctx.Context so a seeded pipeline replays its
// resamples exactly.
package stats

import "github.com/katalvlaran/ternbet/randctx"

// Bootstrap draws nSamples independent resamples of data (each the same
// length as data, with replacement) and applies statistic to each,
// returning the nSamples results in draw order.
//
// Draws: exactly nSamples·len(data) uniform index draws.
//
// Returns ErrEmptyInput for empty data and ErrNegativeCount for
// nSamples < 0.
//
// Complexity: O(nSamples·len(data)) plus nSamples statistic evaluations.
func Bootstrap(rc *randctx.Context, data []float64, nSamples int, statistic func([]float64) float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if nSamples < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]float64, nSamples)
	resample := make([]float64, len(data))
	for i := range out {
		for j := range resample {
			resample[j] = data[rc.IntN(len(data))]
		}
		out[i] = statistic(resample)
	}

	return out, nil
}
