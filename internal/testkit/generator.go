package testkit

import (
	"fmt"
	"math/rand"
)

// Config controls synthetic sample generation. Seeded so every test run
// sees identical data.
type Config struct {
	Rows int
	Seed int64

	// Gaussian parameters for the numeric column
	Mean   float64
	StdDev float64

	// Probability that a categorical row is the success label
	SuccessRate  float64
	SuccessLabel string
	FailureLabel string
}

func DefaultConfig() Config {
	return Config{
		Rows:         500,
		Seed:         42,
		Mean:         100,
		StdDev:       15,
		SuccessRate:  0.6,
		SuccessLabel: "yes",
		FailureLabel: "no",
	}
}

// Dataset holds the generated columns, both as typed series for direct
// engine tests and as raw interface slices for boundary tests.
type Dataset struct {
	Numeric    []float64
	Labels     []string
	RawNumeric []interface{}
	RawLabels  []interface{}
}

// Generate produces a deterministic synthetic dataset.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("rows must be > 0")
	}
	if cfg.SuccessRate < 0 || cfg.SuccessRate > 1 {
		return nil, fmt.Errorf("success rate must be in [0,1]")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ds := &Dataset{
		Numeric:    make([]float64, cfg.Rows),
		Labels:     make([]string, cfg.Rows),
		RawNumeric: make([]interface{}, cfg.Rows),
		RawLabels:  make([]interface{}, cfg.Rows),
	}

	for i := 0; i < cfg.Rows; i++ {
		v := cfg.Mean + rng.NormFloat64()*cfg.StdDev
		ds.Numeric[i] = v
		ds.RawNumeric[i] = v

		label := cfg.FailureLabel
		if rng.Float64() < cfg.SuccessRate {
			label = cfg.SuccessLabel
		}
		ds.Labels[i] = label
		ds.RawLabels[i] = label
	}

	return ds, nil
}
