package utils

import (
	"math"
	"testing"
)

func TestFloatRangeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"Unit range", 0, 1},
		{"Speed range", 2, 8},
		{"Negative range", -5, -1},
		{"Crossing zero", -0.3, 0.3},
	}

	rng := NewPRNGService(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v := rng.FloatRange(tt.min, tt.max)
				if v < tt.min || v >= tt.max {
					t.Fatalf("FloatRange(%v, %v) = %v, out of bounds", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestAngleBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		a := rng.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle() = %v, want [0, 2π)", a)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := NewPRNGService(1234)
	b := NewPRNGService(1234)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) did not fire")
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"Inside", 0.5, 0, 1, 0.5},
		{"Below", -2, 0, 1, 0},
		{"Above", 3, 0, 1, 1},
		{"At min", 0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
