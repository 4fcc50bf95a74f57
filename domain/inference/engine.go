package inference

import (
	"fmt"
	"math"

	"statlab/domain/core"
	"statlab/domain/descriptive"
	"statlab/domain/sample"
	"statlab/ports"
)

// DefaultConfidenceLevel is used by Summarize and by callers that do not
// care about a specific level.
const DefaultConfidenceLevel = 0.95

// Interval is a confidence interval for a population parameter. Bounds
// are not clamped: a proportion interval can leave [0,1] for small n or
// extreme sample proportions, and that is reported as-is.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Engine produces confidence intervals on top of a descriptive engine.
// It composes the base engine rather than copying its sample, and pulls
// distribution critical values through a port so the domain never links a
// numeric library directly.
type Engine struct {
	*descriptive.Engine
	critical ports.CriticalValuePort
}

// New wraps a sample for inference. Interval math needs a defined
// standard error, so fewer than two non-missing observations fail
// construction.
func New(s *sample.Sample, critical ports.CriticalValuePort) (*Engine, error) {
	base, err := descriptive.New(s)
	if err != nil {
		return nil, err
	}
	if base.N() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, have %d", core.ErrInsufficientData, base.N())
	}
	return &Engine{Engine: base, critical: critical}, nil
}

// FromRaw normalizes a raw value slice and builds an inference engine.
func FromRaw(raw []interface{}, critical ports.CriticalValuePort) (*Engine, error) {
	s, err := sample.New(raw)
	if err != nil {
		return nil, err
	}
	return New(s, critical)
}

// MeanInterval computes the confidence interval for the population mean
// using the Student's t distribution with n-1 degrees of freedom. The
// data must coerce to numbers; level is a fraction strictly between 0
// and 1, supplied by the caller.
func (e *Engine) MeanInterval(level float64) (Interval, error) {
	mean, err := e.Mean()
	if err != nil {
		return Interval{}, err
	}
	sd, err := e.StdDev()
	if err != nil {
		return Interval{}, err
	}

	n := e.N()
	tCritical := e.critical.TwoTailedT(level, n-1)
	standardError := sd / math.Sqrt(float64(n))
	margin := tCritical * standardError

	return Interval{Lower: mean - margin, Upper: mean + margin}, nil
}

// ProportionInterval computes the Normal-approximation confidence
// interval for the population proportion of observations equal to the
// success value. Equality comparison works for both numeric and
// categorical samples, so there is no numeric precondition.
func (e *Engine) ProportionInterval(success sample.Observation, level float64) (Interval, error) {
	n := e.N()
	pHat := float64(e.Sample().CountEqual(success)) / float64(n)
	qHat := 1 - pHat

	zCritical := e.critical.TwoTailedZ(level)
	standardError := math.Sqrt(pHat * qHat / float64(n))
	margin := zCritical * standardError

	return Interval{Lower: pHat - margin, Upper: pHat + margin}, nil
}
