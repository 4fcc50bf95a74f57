package descriptive

import (
	"math"
	"sort"

	"statlab/domain/core"
	"statlab/domain/sample"
)

// Engine computes descriptive statistics over a single sample. Every
// statistic is implemented directly from its definition; the engine does
// not delegate to a statistics library. All operations are pure reads, so
// an Engine is safe for concurrent use after construction.
type Engine struct {
	sample *sample.Sample
}

// New builds an engine around a normalized sample.
func New(s *sample.Sample) (*Engine, error) {
	if s == nil || s.Len() == 0 {
		return nil, core.ErrEmptySample
	}
	return &Engine{sample: s}, nil
}

// FromRaw normalizes a raw value slice and builds an engine over it.
func FromRaw(raw []interface{}) (*Engine, error) {
	s, err := sample.New(raw)
	if err != nil {
		return nil, err
	}
	return New(s)
}

// Sample exposes the underlying sample for composed engines.
func (e *Engine) Sample() *sample.Sample {
	return e.sample
}

// Count returns the total element count, missing values included.
func (e *Engine) Count() int {
	return e.sample.Len()
}

// N returns the non-missing observation count.
func (e *Engine) N() int {
	return e.sample.N()
}

// Sum returns the arithmetic total of the numeric values. Non-numeric
// observations fail the conversion; a sample with zero convertible values
// sums to 0.
func (e *Engine) Sum() (float64, error) {
	values, err := e.sample.Floats()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total, nil
}

// Mean returns sum/count, or NaN when there are no numeric values.
func (e *Engine) Mean() (float64, error) {
	values, err := e.sample.Floats()
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return math.NaN(), nil
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// Median sorts a copy of the values and returns the middle one, averaging
// the two central elements for even counts. Empty input yields NaN.
func (e *Engine) Median() (float64, error) {
	values, err := e.sample.Floats()
	if err != nil {
		return 0, err
	}
	n := len(values)
	if n == 0 {
		return math.NaN(), nil
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Mode builds a frequency table in one pass and returns every value that
// attains the maximum frequency. When all values are unique (and there is
// more than one), there is no mode and the result is empty. Works on
// categorical samples as well as numeric ones.
func (e *Engine) Mode() []sample.Observation {
	freq := make(map[string]int)
	first := make(map[string]sample.Observation)
	order := make([]string, 0)

	for i := 0; i < e.sample.Len(); i++ {
		o := e.sample.At(i)
		if o.IsMissing {
			continue
		}
		key := o.Label()
		if _, seen := freq[key]; !seen {
			first[key] = o
			order = append(order, key)
		}
		freq[key]++
	}
	if len(freq) == 0 {
		return nil
	}

	maxFreq := 0
	for _, c := range freq {
		if c > maxFreq {
			maxFreq = c
		}
	}
	// All-unique samples with more than one element have no mode.
	if maxFreq == 1 && e.sample.N() > 1 {
		return nil
	}

	modes := make([]sample.Observation, 0, 1)
	for _, key := range order {
		if freq[key] == maxFreq {
			modes = append(modes, first[key])
		}
	}
	return modes
}

// Variance returns the sample variance with Bessel's correction (n-1
// divisor). Fewer than two values yield NaN.
func (e *Engine) Variance() (float64, error) {
	values, err := e.sample.Floats()
	if err != nil {
		return 0, err
	}
	n := len(values)
	if n < 2 {
		return math.NaN(), nil
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(n-1), nil
}

// StdDev returns the square root of the sample variance. NaN propagates.
func (e *Engine) StdDev() (float64, error) {
	variance, err := e.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Range returns max-min over the numeric values, NaN when there are none.
func (e *Engine) Range() (float64, error) {
	values, err := e.sample.Floats()
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return math.NaN(), nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min, nil
}

// CoefficientOfVariation returns the standard deviation as a percentage of
// the mean. A zero mean with zero spread means no variability (0.0); a
// zero mean with spread makes the ratio undefined (+Inf). NaN inputs
// propagate.
func (e *Engine) CoefficientOfVariation() (float64, error) {
	mean, err := e.Mean()
	if err != nil {
		return 0, err
	}
	sd, err := e.StdDev()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(mean) || math.IsNaN(sd) {
		return math.NaN(), nil
	}
	if mean == 0 {
		if sd == 0 {
			return 0.0, nil
		}
		return math.Inf(1), nil
	}
	return (sd / mean) * 100, nil
}
