package ephemeris

import (
	"fmt"
	"math"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// orbitalElements holds Keplerian mean elements at J2000 plus per-century
// rates: semi-major axis (au), eccentricity, inclination, mean longitude,
// longitude of perihelion, and longitude of the ascending node (degrees).
type orbitalElements struct {
	a, aDot float64
	e, eDot float64
	i, iDot float64
	l, lDot float64
	w, wDot float64
	o, oDot float64
}

var planetElements = map[panchanga.Body]orbitalElements{
	panchanga.BodyMercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		w: 77.45779628, wDot: 0.16047689,
		o: 48.33076593, oDot: -0.12534081,
	},
	panchanga.BodyVenus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		w: 131.60246718, wDot: 0.00268329,
		o: 76.67984255, oDot: -0.27769418,
	},
	panchanga.BodyMars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		w: -23.94362959, wDot: 0.44441088,
		o: 49.55953891, oDot: -0.29257343,
	},
	panchanga.BodyJupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		w: 14.72847983, wDot: 0.21252668,
		o: 100.47390909, oDot: 0.20469106,
	},
	panchanga.BodySaturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		w: 92.59887831, wDot: -0.41897216,
		o: 113.66242448, oDot: -0.28867794,
	},
}

// Earth-Moon barycenter elements stand in for the Earth when reducing
// heliocentric positions to geocentric ones.
var earthElements = orbitalElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	l: 100.46457166, lDot: 35999.37244981,
	w: 102.93768193, wDot: 0.32327364,
	o: 0, oDot: 0,
}

// meanElementEcliptic returns the tropical geocentric ecliptic longitude and
// latitude in degrees and distance in au for one of the five classical
// planets, using Keplerian mean elements. It serves as the planetary theory
// when no VSOP87 data directory is configured.
func meanElementEcliptic(body panchanga.Body, t float64) (lon, lat, dist float64, err error) {
	el, ok := planetElements[body]
	if !ok {
		return 0, 0, 0, fmt.Errorf("no orbital elements for body %q", body)
	}

	px, py, pz := heliocentric(el, t)
	ex, ey, ez := heliocentric(earthElements, t)

	gx, gy, gz := px-ex, py-ey, pz-ez
	dist = math.Sqrt(gx*gx + gy*gy + gz*gz)
	lon = panchanga.NormalizeDegrees(deg(math.Atan2(gy, gx)))
	lat = deg(math.Asin(gz / dist))
	return lon, lat, dist, nil
}

// heliocentric resolves mean elements at epoch t into ecliptic rectangular
// coordinates in au.
func heliocentric(el orbitalElements, t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	ecc := el.e + el.eDot*t
	incl := rad(el.i + el.iDot*t)
	meanLon := el.l + el.lDot*t
	periLon := el.w + el.wDot*t
	nodeLon := el.o + el.oDot*t

	meanAnomaly := rad(panchanga.NormalizeDegrees(meanLon - periLon))
	ea := solveKepler(meanAnomaly, ecc)

	// Position in the orbital plane.
	xp := a * (math.Cos(ea) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * math.Sin(ea)

	argPeri := rad(periLon - nodeLon)
	node := rad(nodeLon)
	cw, sw := math.Cos(argPeri), math.Sin(argPeri)
	co, so := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(incl), math.Sin(incl)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// solveKepler iterates Newton's method on Kepler's equation. The eccentric
// anomaly converges within a handful of steps for planetary eccentricities.
func solveKepler(meanAnomaly, ecc float64) float64 {
	ea := meanAnomaly + ecc*math.Sin(meanAnomaly)
	for i := 0; i < 10; i++ {
		delta := (ea - ecc*math.Sin(ea) - meanAnomaly) / (1 - ecc*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < 1e-9 {
			break
		}
	}
	return ea
}
