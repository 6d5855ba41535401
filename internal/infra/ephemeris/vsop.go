package ephemeris

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/planetposition"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

var vsopIndex = map[panchanga.Body]int{
	panchanga.BodyMercury: planetposition.Mercury,
	panchanga.BodyVenus:   planetposition.Venus,
	panchanga.BodyMars:    planetposition.Mars,
	panchanga.BodyJupiter: planetposition.Jupiter,
	panchanga.BodySaturn:  planetposition.Saturn,
}

// loadVSOP reads the VSOP87B theory files for the five classical planets and
// the Earth from dir. All six must be present.
func loadVSOP(dir string) (map[panchanga.Body]*planetposition.V87Planet, *planetposition.V87Planet, error) {
	planets := make(map[panchanga.Body]*planetposition.V87Planet, len(vsopIndex))
	for body, ib := range vsopIndex {
		p, err := planetposition.LoadPlanetPath(ib, dir)
		if err != nil {
			return nil, nil, fmt.Errorf("load VSOP87 theory for %s: %w", body, err)
		}
		planets[body] = p
	}
	earth, err := planetposition.LoadPlanetPath(planetposition.Earth, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load VSOP87 theory for earth: %w", err)
	}
	return planets, earth, nil
}

// planetEcliptic returns the tropical geocentric ecliptic longitude and
// latitude in degrees and distance in au of body at jde. With VSOP87 data
// loaded it reduces the heliocentric theory positions of the planet and the
// Earth to a geocentric vector; otherwise it falls back to Keplerian mean
// elements.
func (e *Engine) planetEcliptic(body panchanga.Body, jde float64) (lon, lat, dist float64, err error) {
	if e.earth == nil {
		return meanElementEcliptic(body, base.J2000Century(jde))
	}

	p, ok := e.vsop[body]
	if !ok {
		return 0, 0, 0, fmt.Errorf("no planetary theory for body %q", body)
	}

	l, b, r := p.Position(jde)
	l0, b0, r0 := e.earth.Position(jde)

	x := r*math.Cos(b.Rad())*math.Cos(l.Rad()) - r0*math.Cos(b0.Rad())*math.Cos(l0.Rad())
	y := r*math.Cos(b.Rad())*math.Sin(l.Rad()) - r0*math.Cos(b0.Rad())*math.Sin(l0.Rad())
	z := r*math.Sin(b.Rad()) - r0*math.Sin(b0.Rad())

	dist = math.Sqrt(x*x + y*y + z*z)
	lon = panchanga.NormalizeDegrees(deg(math.Atan2(y, x)))
	lat = deg(math.Asin(z / dist))
	return lon, lat, dist, nil
}
