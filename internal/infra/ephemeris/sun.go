package ephemeris

import (
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// sunEcliptic returns the tropical geocentric longitude of the Sun in degrees
// and its distance in au for a Julian-century offset from J2000.
func sunEcliptic(t float64) (lon, dist float64) {
	s, _ := solar.True(t)
	return panchanga.NormalizeDegrees(s.Deg()), solar.Radius(t)
}
