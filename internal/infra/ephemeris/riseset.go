package ephemeris

import (
	"context"
	"fmt"
	"math"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// Altitude at which the upper limb crosses the horizon, refraction included.
var altitudeTargets = map[panchanga.Body]float64{
	panchanga.BodySun:  -0.8333,
	panchanga.BodyMoon: 0.125,
}

const (
	scanStep   = 5.0 / 1440 // five minutes in days
	scanWindow = 1.5        // days searched past jd before reporting no event
)

// RiseSet returns the first rise or set instant of body at or after jd for
// the given observer, or nil when no horizon crossing occurs within the
// search window (circumpolar case).
func (e *Engine) RiseSet(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body, lat, lon float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kind != panchanga.KindRise && kind != panchanga.KindSet {
		return nil, fmt.Errorf("unknown rise/set kind %q", kind)
	}

	target, ok := altitudeTargets[body]
	if !ok {
		target = -0.5667
	}

	prev, err := e.altitude(jd, body, lat, lon)
	if err != nil {
		return nil, err
	}
	prev -= target

	for dt := scanStep; dt <= scanWindow; dt += scanStep {
		at := panchanga.JulianDay(float64(jd) + dt)
		cur, err := e.altitude(at, body, lat, lon)
		if err != nil {
			return nil, err
		}
		cur -= target

		var crossed bool
		if kind == panchanga.KindRise {
			crossed = prev <= 0 && cur > 0
		} else {
			crossed = prev >= 0 && cur < 0
		}
		if crossed {
			instant, err := e.refineCrossing(float64(at)-scanStep, float64(at), body, lat, lon, target, kind)
			if err != nil {
				return nil, err
			}
			return &instant, nil
		}
		prev = cur
	}
	return nil, nil
}

// refineCrossing bisects the step that bracketed the horizon crossing.
func (e *Engine) refineCrossing(lo, hi float64, body panchanga.Body, lat, lon, target float64, kind panchanga.RiseSetKind) (panchanga.JulianDay, error) {
	rising := kind == panchanga.KindRise
	for i := 0; i < 25; i++ {
		mid := (lo + hi) / 2
		alt, err := e.altitude(panchanga.JulianDay(mid), body, lat, lon)
		if err != nil {
			return 0, err
		}
		if (alt-target > 0) == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return panchanga.JulianDay((lo + hi) / 2), nil
}

// altitude computes the geocentric altitude of body above the observer's
// horizon in degrees, working entirely in the tropical/equatorial frame.
func (e *Engine) altitude(jd panchanga.JulianDay, body panchanga.Body, lat, lon float64) (float64, error) {
	jde := float64(jd)

	var lam, beta float64
	switch body {
	case panchanga.BodySun:
		lam, _ = sunEcliptic(centuries(jd))
	case panchanga.BodyMoon:
		lam, beta, _ = moonEcliptic(jde)
	case panchanga.BodyMars, panchanga.BodyMercury, panchanga.BodyJupiter, panchanga.BodyVenus, panchanga.BodySaturn:
		var err error
		lam, beta, _, err = e.planetEcliptic(body, jde)
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("no rise/set events for body %q", body)
	}

	eps := rad(meanObliquity(jde))
	lr, br := rad(lam), rad(beta)

	dec := math.Asin(math.Sin(br)*math.Cos(eps) + math.Cos(br)*math.Sin(eps)*math.Sin(lr))
	ra := math.Atan2(math.Sin(lr)*math.Cos(eps)-math.Tan(br)*math.Sin(eps), math.Cos(lr))

	lst := rad(panchanga.NormalizeDegrees(gmstDegrees(jd) + lon))
	hourAngle := lst - ra
	phi := rad(lat)

	sinAlt := math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(hourAngle)
	return deg(math.Asin(sinAlt)), nil
}
