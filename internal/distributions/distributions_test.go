package distributions

import (
	"math"
	"testing"
)

// Reference values from standard t and z tables.
func TestTwoTailedT(t *testing.T) {
	d := New()

	cases := []struct {
		level float64
		df    int
		want  float64
	}{
		{0.95, 1, 12.706},
		{0.95, 4, 2.776},
		{0.95, 10, 2.228},
		{0.95, 30, 2.042},
		{0.99, 4, 4.604},
	}
	for _, tc := range cases {
		got := d.TwoTailedT(tc.level, tc.df)
		if math.Abs(got-tc.want) > 1e-3 {
			t.Fatalf("TwoTailedT(%v, %d) = %v, want %v", tc.level, tc.df, got, tc.want)
		}
	}
}

func TestTwoTailedZ(t *testing.T) {
	d := New()

	if got := d.TwoTailedZ(0.95); math.Abs(got-1.960) > 1e-3 {
		t.Fatalf("TwoTailedZ(0.95) = %v, want 1.960", got)
	}
	if got := d.TwoTailedZ(0.99); math.Abs(got-2.576) > 1e-3 {
		t.Fatalf("TwoTailedZ(0.99) = %v, want 2.576", got)
	}
	if got := d.TwoTailedZ(0.90); math.Abs(got-1.645) > 1e-3 {
		t.Fatalf("TwoTailedZ(0.90) = %v, want 1.645", got)
	}
}

func TestQuantilesAreMonotonic(t *testing.T) {
	d := New()

	if d.TQuantile(0.975, 4) <= d.TQuantile(0.95, 4) {
		t.Fatal("t quantile must increase with cumulative probability")
	}
	if d.NormalQuantile(0.975) <= d.NormalQuantile(0.95) {
		t.Fatal("normal quantile must increase with cumulative probability")
	}
	// Student's t approaches the normal as df grows.
	if math.Abs(d.TQuantile(0.975, 10000)-d.NormalQuantile(0.975)) > 1e-2 {
		t.Fatal("t quantile should approach the normal quantile for large df")
	}
}
