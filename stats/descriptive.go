package stats

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for statistics inputs.
var (
	// ErrEmptyInput is returned when a statistic is asked of an empty sequence.
	ErrEmptyInput = errors.New("stats: input must be non-empty")

	// ErrLengthMismatch is returned by paired statistics when the sequences
	// differ in length or either is empty.
	ErrLengthMismatch = errors.New("stats: sequences must be non-empty and of equal length")

	// ErrInvalidPercentile is returned when p lies outside (0, 1].
	ErrInvalidPercentile = errors.New("stats: percentile must lie in (0, 1]")

	// ErrZeroExpected is returned by ChiSquare when an expected frequency is 0.
	ErrZeroExpected = errors.New("stats: expected frequency must be non-zero")

	// ErrZeroVariance is returned by Correlation when either sequence is
	// constant, leaving the coefficient undefined.
	ErrZeroVariance = errors.New("stats: correlation undefined for constant sequence")

	// ErrBadWindow is returned by MovingAverage when the window does not fit
	// the data.
	ErrBadWindow = errors.New("stats: window must lie in [1, len(data)]")

	// ErrNegativeCount is returned when a resample count is negative.
	ErrNegativeCount = errors.New("stats: count must be non-negative")
)

// Mean returns the arithmetic mean of data.
// Returns ErrEmptyInput for empty data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	sum := 0.0
	for _, x := range data {
		sum += x
	}

	return sum / float64(len(data)), nil
}

// Median returns the middle value of data (the mean of the two middle
// values for even lengths). data itself is left unsorted.
// Returns ErrEmptyInput for empty data.
func Median(data []float64) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}

	return sorted[mid], nil
}

// Variance returns the population variance of data (division by n, matching
// the rest of the pipeline's frequency-based view of samples).
// Returns ErrEmptyInput for empty data.
func Variance(data []float64) (float64, error) {
	m, err := Mean(data)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, x := range data {
		d := x - m
		sum += d * d
	}

	return sum / float64(len(data)), nil
}

// StdDev returns the population standard deviation of data.
// Returns ErrEmptyInput for empty data.
func StdDev(data []float64) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Mode returns every value of maximal frequency, in first-seen order.
// For (1 2 2 3 3 3 4) the mode is (3); ties return all tied values.
// Returns ErrEmptyInput for empty data.
func Mode[T comparable](data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	counts := make(map[T]int, len(data))
	order := make([]T, 0, len(data))
	best := 0
	for _, v := range data {
		counts[v]++
		if counts[v] == 1 {
			order = append(order, v)
		}
		if counts[v] > best {
			best = counts[v]
		}
	}

	out := make([]T, 0, 1)
	for _, v := range order {
		if counts[v] == best {
			out = append(out, v)
		}
	}

	return out, nil
}

// Percentile returns the p-th percentile of data for p in (0, 1]:
// data is sorted ascending and the element at 1-indexed rank ceil(p·n)
// is returned. Percentile(data, 1) is therefore the maximum.
//
// Returns ErrEmptyInput for empty data and ErrInvalidPercentile for p
// outside (0, 1].
func Percentile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if p <= 0 || p > 1 || math.IsNaN(p) {
		return 0, ErrInvalidPercentile
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	rank := int(math.Ceil(p * float64(len(sorted))))

	return sorted[rank-1], nil
}

// FrequencyTable maps each distinct observed value to its occurrence count.
// Every observed value appears exactly once; an empty input yields an empty
// table.
func FrequencyTable[T comparable](samples []T) map[T]int {
	table := make(map[T]int, len(samples))
	for _, v := range samples {
		table[v]++
	}

	return table
}
