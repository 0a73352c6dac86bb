// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Sinc computes the normalized sinc function sin(pi*x)/(pi*x).
func Sinc(x float64) float64 {
	if math.Abs(x) < 1e-9 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Lanczos evaluates the Lanczos window of radius a at offset x.
// The window tapers a sinc kernel to zero at |x| >= a.
func Lanczos(x, a float64) float64 {
	if x <= -a || x >= a {
		return 0
	}
	return Sinc(x / a)
}

// CubicInterpolate performs cubic interpolation
// x is the fractional position between y1 and y2 (0 <= x <= 1)
// y0, y1, y2, y3 are four consecutive samples
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	// Catmull-Rom spline interpolation
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
