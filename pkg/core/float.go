package core

import "math"

// DefaultEpsilon is the tolerance used by Equals, NearZero and CompareFloats
const DefaultEpsilon = 1e-6

// CompareFloatsEps reports whether left and right differ by less than epsilon
func CompareFloatsEps(left, right, epsilon float64) bool {
	return math.Abs(left-right) < epsilon
}

// CompareFloats reports whether left and right differ by less than DefaultEpsilon
func CompareFloats(left, right float64) bool {
	return CompareFloatsEps(left, right, DefaultEpsilon)
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
