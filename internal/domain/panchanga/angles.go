package panchanga

import "math"

// NormalizeDegrees wraps an angle into [0, 360). The wrap is load-bearing:
// several derivations subtract two longitudes and rely on the result being
// forced non-negative.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// elongation is the Moon-Sun separation forced into [0, 360), the quantity
// behind both Tithi and Karana.
func elongation(sunLon, moonLon float64) float64 {
	return NormalizeDegrees(moonLon - sunLon)
}
