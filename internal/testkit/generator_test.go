package testkit

import (
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for i := range a.Numeric {
		if a.Numeric[i] != b.Numeric[i] {
			t.Fatalf("numeric diverged at row %d: %v != %v", i, a.Numeric[i], b.Numeric[i])
		}
		if a.Labels[i] != b.Labels[i] {
			t.Fatalf("labels diverged at row %d: %s != %s", i, a.Labels[i], b.Labels[i])
		}
	}
}

func TestGenerate_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if _, err := Generate(cfg); err == nil {
		t.Fatal("expected error for zero rows")
	}

	cfg = DefaultConfig()
	cfg.SuccessRate = 1.5
	if _, err := Generate(cfg); err == nil {
		t.Fatal("expected error for out-of-range success rate")
	}
}

func TestGenerate_SuccessRateRoughlyHolds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 2000

	ds, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	successes := 0
	for _, label := range ds.Labels {
		if label == cfg.SuccessLabel {
			successes++
		}
	}
	rate := float64(successes) / float64(cfg.Rows)
	if rate < cfg.SuccessRate-0.05 || rate > cfg.SuccessRate+0.05 {
		t.Fatalf("observed success rate %v too far from configured %v", rate, cfg.SuccessRate)
	}
}
