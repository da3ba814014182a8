package is456

import "fmt"

// Interpolate performs clamped linear interpolation of ys over the strictly
// increasing abscissae xs. Queries outside [xs[0], xs[n-1]] return the bound
// value with clamped=true; queries landing on a tabulated point return the
// tabulated value bit-exactly.
//
// Mismatched or empty tables are programming errors and panic.
func Interpolate(xs, ys []float64, x float64) (y float64, clamped bool) {
	if len(xs) == 0 || len(xs) != len(ys) {
		panic(fmt.Sprintf("is456: malformed table (%d abscissae, %d ordinates)", len(xs), len(ys)))
	}
	last := len(xs) - 1
	if x <= xs[0] {
		return ys[0], x < xs[0]
	}
	if x >= xs[last] {
		return ys[last], x > xs[last]
	}
	for i := 1; i <= last; i++ {
		if x == xs[i] {
			return ys[i], false
		}
		if x < xs[i] {
			x0, x1 := xs[i-1], xs[i]
			y0, y1 := ys[i-1], ys[i]
			return y0 + (y1-y0)*(x-x0)/(x1-x0), false
		}
	}
	// unreachable for increasing xs
	panic("is456: table abscissae not increasing")
}
