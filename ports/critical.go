package ports

// CriticalValuePort supplies distribution quantiles for interval
// construction. Implementations wrap a numeric library; the domain only
// needs the two-tailed critical values.
type CriticalValuePort interface {
	// TwoTailedT returns the Student's t quantile at cumulative
	// probability 1-(1-level)/2 with the given degrees of freedom.
	TwoTailedT(level float64, degreesOfFreedom int) float64

	// TwoTailedZ returns the standard Normal quantile at cumulative
	// probability 1-(1-level)/2.
	TwoTailedZ(level float64) float64
}
