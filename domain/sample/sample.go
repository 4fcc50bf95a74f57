package sample

import (
	"statlab/domain/core"
)

// Sample holds an ordered, immutable sequence of observations. The
// non-missing count is computed once at construction and reused by every
// statistic that needs a denominator.
type Sample struct {
	observations []Observation
	nonMissing   int
}

// New normalizes a raw value slice into a Sample. Construction fails on
// empty input; element types are not validated here because categorical
// analyses share the same base.
func New(raw []interface{}) (*Sample, error) {
	if len(raw) == 0 {
		return nil, core.ErrEmptySample
	}
	obs := make([]Observation, 0, len(raw))
	for _, v := range raw {
		obs = append(obs, Coerce(v))
	}
	return FromObservations(obs)
}

// FromObservations builds a Sample from an already-normalized sequence.
func FromObservations(obs []Observation) (*Sample, error) {
	if len(obs) == 0 {
		return nil, core.ErrEmptySample
	}
	s := &Sample{observations: obs}
	for _, o := range obs {
		if !o.IsMissing {
			s.nonMissing++
		}
	}
	return s, nil
}

// FromAny accepts either a raw value slice or a normalized observation
// slice, mirroring the two accepted input shapes at the system boundary.
func FromAny(input interface{}) (*Sample, error) {
	switch v := input.(type) {
	case []interface{}:
		return New(v)
	case []Observation:
		return FromObservations(v)
	case *Sample:
		if v == nil {
			return nil, core.ErrEmptySample
		}
		return v, nil
	default:
		return nil, core.ErrUnsupportedInput
	}
}

// Len returns the total element count, missing values included.
func (s *Sample) Len() int {
	return len(s.observations)
}

// N returns the count of non-missing observations.
func (s *Sample) N() int {
	return s.nonMissing
}

// At returns the observation at index i.
func (s *Sample) At(i int) Observation {
	return s.observations[i]
}

// Observations returns a copy of the observation sequence so callers
// cannot mutate the sample.
func (s *Sample) Observations() []Observation {
	out := make([]Observation, len(s.observations))
	copy(out, s.observations)
	return out
}

// Floats converts every non-missing observation to a float64. It fails
// with a conversion error on the first observation that cannot be
// interpreted as a number.
func (s *Sample) Floats() ([]float64, error) {
	out := make([]float64, 0, s.nonMissing)
	for _, o := range s.observations {
		if o.IsMissing {
			continue
		}
		f, ok := o.Float()
		if !ok {
			return nil, core.NewConversionError(o.Label())
		}
		out = append(out, f)
	}
	return out, nil
}

// IsNumeric reports whether every non-missing observation converts to a
// number.
func (s *Sample) IsNumeric() bool {
	_, err := s.Floats()
	return err == nil
}

// CountEqual returns how many non-missing observations equal the given
// value, compared by normalized label.
func (s *Sample) CountEqual(value Observation) int {
	count := 0
	for _, o := range s.observations {
		if o.Equal(value) {
			count++
		}
	}
	return count
}
