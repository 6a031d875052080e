// Package stats - information-theoretic and comparative analysis:
// entropy, correlation, chi-square goodness of fit, and smoothing.
package stats

import "math"

// Entropy returns the Shannon entropy, in bits, of the empirical frequency
// distribution of samples: H = −Σ pᵢ·log2(pᵢ).
//
// H is 0 when all samples are identical (and for empty input, whose
// distribution carries no information), and approaches log2(k) as a k-way
// distribution approaches uniform.
func Entropy[T comparable](samples []T) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	h := 0.0
	for _, count := range FrequencyTable(samples) {
		p := float64(count) / float64(n)
		h -= p * math.Log2(p)
	}

	return h
}

// Correlation returns the Pearson correlation coefficient of the paired
// sequences x and y.
//
// Returns ErrLengthMismatch when the lengths differ or either sequence is
// empty, and ErrZeroVariance when either sequence is constant (the
// coefficient is undefined, and this library does not substitute defaults).
func Correlation(x, y []float64) (float64, error) {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0, ErrLengthMismatch
	}

	mx, _ := Mean(x)
	my, _ := Mean(y)

	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, ErrZeroVariance
	}

	return sxy / math.Sqrt(sxx*syy), nil
}

// ChiSquare returns the chi-square statistic Σ (Oᵢ−Eᵢ)²/Eᵢ of observed
// frequencies against expected ones.
//
// Returns ErrEmptyInput for empty inputs, ErrLengthMismatch for differing
// lengths, and ErrZeroExpected when any expected frequency is 0 (the
// statistic would divide by zero; the caller must bin differently instead).
func ChiSquare(observed, expected []float64) (float64, error) {
	if len(observed) == 0 {
		return 0, ErrEmptyInput
	}
	if len(observed) != len(expected) {
		return 0, ErrLengthMismatch
	}

	sum := 0.0
	for i, e := range expected {
		if e == 0 {
			return 0, ErrZeroExpected
		}
		d := observed[i] - e
		sum += d * d / e
	}

	return sum, nil
}

// MovingAverage smooths data with a sliding window: the result has length
// len(data)−window+1, each element the mean of the corresponding window
// slice.
//
// Returns ErrEmptyInput for empty data and ErrBadWindow when window < 1 or
// window > len(data).
//
// Complexity: O(n) via a running sum.
func MovingAverage(data []float64, window int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if window < 1 || window > len(data) {
		return nil, ErrBadWindow
	}

	out := make([]float64, len(data)-window+1)
	sum := 0.0
	for i, x := range data {
		sum += x
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out[i-window+1] = sum / float64(window)
		}
	}

	return out, nil
}
