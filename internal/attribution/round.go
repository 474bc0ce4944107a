package attribution

import "math"

// round2 rounds half-up away from zero to 2 decimals. The epsilon nudge
// compensates for midpoints that sit just below .5 in binary (2.675
// stores as 2.67499...), which plain floor(x*100+0.5) would round down.
func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	return math.Floor(v*100+0.5+1e-9) / 100
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
