package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Equals_Tolerance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected bool
	}{
		{"identical", NewVec3(1, 2, 3), NewVec3(1, 2, 3), true},
		{"differ at 1e-6", NewVec3(100.0, 55.97, -7.130001), NewVec3(100.0, 55.97, -7.13), false},
		{"floating point drift", NewVec3(0.1+0.2, 0, 0), NewVec3(0.3, 0, 0), true},
		{"sum within tolerance", NewVec3(1, 1, 1).Add(NewVec3(1e-7, -1e-7, 5e-7)), NewVec3(1, 1, 1), true},
		{"clearly different", NewVec3(1, 0, 0), NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.expected {
				t.Errorf("%v.Equals(%v) = %t, expected %t", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestVec3_ArithmeticProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		a := RandomVec3Range(random, -100, 100)
		b := RandomVec3Range(random, -100, 100)
		s := RandomFloatRange(random, 0.5, 50)
		if random.Float64() < 0.5 {
			s = -s
		}

		if got := a.Add(b).Subtract(b); !got.EqualsEps(a, 1e-9) {
			t.Fatalf("(a+b)-b = %v, expected %v", got, a)
		}
		if got := a.Multiply(s).Divide(s); !got.EqualsEps(a, 1e-9) {
			t.Fatalf("(a*s)/s = %v, expected %v", got, a)
		}
		if a.Dot(b) != b.Dot(a) {
			t.Fatalf("dot not commutative for %v, %v", a, b)
		}
		if !CompareFloatsEps(a.Length()*a.Length(), a.Dot(a), 1e-6) {
			t.Fatalf("length² = %f, dot(a,a) = %f", a.Length()*a.Length(), a.Dot(a))
		}
	}
}

func TestVec3_ScalarMultiplyCommutes(t *testing.T) {
	v := NewVec3(1.5, -2, 3)
	left := NewVec3(2, 2, 2).MultiplyVec(v)
	right := v.Multiply(2)
	if !left.Equals(right) {
		t.Errorf("Expected %v, got %v", right, left)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross x", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"parallel", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
		{"general", NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_CompoundAssign(t *testing.T) {
	v := NewVec3(1, 2, 3)
	v.AddAssign(NewVec3(1, 1, 1))
	v.MultiplyAssign(3)
	v.DivideAssign(2)

	expected := NewVec3(3, 4.5, 6)
	if !v.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if !v.Equals(NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}
	if !CompareFloats(v.Length(), 1) {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if !math.IsNaN(zero.X) {
		t.Errorf("Normalizing the zero vector should produce NaN, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-8, -1e-8, 5e-7), true},
		{"one component large", NewVec3(1e-8, 0.01, 0), false},
		{"unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 0, 0)},
		{0.5, NewVec3(1, 1, 0)},
		{-1, NewVec3(1, -2, 0)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); !got.Equals(tt.expected) {
			t.Errorf("At(%f) = %v, expected %v", tt.t, got, tt.expected)
		}
	}
}

func TestDegreesToRadians(t *testing.T) {
	if !CompareFloats(DegreesToRadians(180), math.Pi) {
		t.Errorf("Expected pi, got %f", DegreesToRadians(180))
	}
	if !CompareFloats(DegreesToRadians(90), math.Pi/2) {
		t.Errorf("Expected pi/2, got %f", DegreesToRadians(90))
	}
}
