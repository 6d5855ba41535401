package ephemeris

import (
	"github.com/soniakeys/meeus/v3/moonposition"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// moonEcliptic returns the tropical geocentric longitude and latitude of the
// Moon in degrees and its distance in km at jde.
func moonEcliptic(jde float64) (lon, lat, dist float64) {
	l, b, d := moonposition.Position(jde)
	return panchanga.NormalizeDegrees(l.Deg()), b.Deg(), d
}

// meanLunarNode returns the tropical longitude of the mean ascending node
// (Rahu) in degrees at jde.
func meanLunarNode(jde float64) float64 {
	return panchanga.NormalizeDegrees(moonposition.Node(jde).Deg())
}
