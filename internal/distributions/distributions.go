package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides unified access to the sampling distributions the
// inference layer needs. All quantile math lives here so the rest of the
// codebase never touches distuv directly.
type Distributions struct{}

// New creates a new distributions utility
func New() *Distributions {
	return &Distributions{}
}

// TwoTailedT returns the Student's t critical value for a two-tailed
// interval at the given confidence level and degrees of freedom.
func (d *Distributions) TwoTailedT(level float64, degreesOfFreedom int) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(degreesOfFreedom)}
	return tDist.Quantile(1 - (1-level)/2)
}

// TwoTailedZ returns the standard Normal critical value for a two-tailed
// interval at the given confidence level.
func (d *Distributions) TwoTailedZ(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// TQuantile exposes the raw t quantile for callers that need one-tailed
// probabilities.
func (d *Distributions) TQuantile(p float64, degreesOfFreedom int) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(degreesOfFreedom)}
	return tDist.Quantile(p)
}

// NormalQuantile exposes the raw standard Normal quantile.
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
