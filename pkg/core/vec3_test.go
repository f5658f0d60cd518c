package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Cross: expected (0,0,-1), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}

	// Zero vector stays zero instead of producing NaNs
	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec3
		normal   Vec3
		expected Vec3
	}{
		{"head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Reflect(tt.normal)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Min(t *testing.T) {
	a := NewVec3(0.9, 0.2, 1.5)
	b := NewVec3(0.5, 0.5, 0.5)
	if got := a.Min(b); got != NewVec3(0.5, 0.2, 0.5) {
		t.Errorf("Min: expected (0.5,0.2,0.5), got %v", got)
	}
}

func TestVec3_AverageAndIsZero(t *testing.T) {
	if got := NewVec3(0.3, 0.6, 0.9).Average(); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Average: expected 0.6, got %v", got)
	}
	if !(Vec3{}).IsZero() {
		t.Error("Expected zero vector to report IsZero")
	}
	if NewVec3(0, 1e-300, 0).IsZero() {
		t.Error("Expected tiny non-zero vector to not report IsZero")
	}
}

func TestSaturate(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{42, 1},
	}
	for _, tt := range tests {
		if got := Saturate(tt.in); got != tt.expected {
			t.Errorf("Saturate(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := Fract(tt.in); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Fract(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}
