// Package ephemeris provides the astronomy engine behind the
// panchanga.Ephemeris contract, built on the Meeus algorithm library: solar
// theory for the Sun, the full lunar theory for the Moon and its mean node
// (Rahu), and VSOP87 planetary theory when a data directory is configured,
// with built-in Keplerian mean elements as the no-data fallback. All
// longitudes leave the engine in the sidereal (Lahiri) frame; rise/set and
// ascendant math runs in the tropical/equatorial frame internally.
package ephemeris

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// Config fixes the engine's reference frame and data location at
// construction. There is no process-wide mutable state; independently
// configured engines can coexist.
type Config struct {
	// DataDir optionally points at a directory of VSOP87B theory files. When
	// set, all six planetary files must load at construction; a missing or
	// incomplete directory is startup-fatal. When unset, planetary positions
	// fall back to built-in Keplerian mean elements.
	DataDir string
	// Ayanamsa names the sidereal offset model. Only "lahiri" is supported.
	Ayanamsa string
}

// Engine implements panchanga.Ephemeris. It holds no mutable state after
// construction and is safe for concurrent use.
type Engine struct {
	cfg   Config
	vsop  map[panchanga.Body]*planetposition.V87Planet
	earth *planetposition.V87Planet
}

// New validates the configuration and constructs an engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Ayanamsa != "" && !strings.EqualFold(cfg.Ayanamsa, "lahiri") {
		return nil, fmt.Errorf("unsupported ayanamsa %q, only lahiri is available", cfg.Ayanamsa)
	}
	e := &Engine{cfg: cfg}
	if cfg.DataDir != "" {
		info, err := os.Stat(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("ephemeris data directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("ephemeris data path %s is not a directory", cfg.DataDir)
		}
		e.vsop, e.earth, err = loadVSOP(cfg.DataDir)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Longitude returns the sidereal (Lahiri) position of body at jd. Ketu has no
// ephemeris entry and must be derived from Rahu by the caller.
func (e *Engine) Longitude(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
	if err := ctx.Err(); err != nil {
		return panchanga.EclipticPosition{}, err
	}

	jde := float64(jd)
	t := centuries(jd)
	var pos panchanga.EclipticPosition
	switch body {
	case panchanga.BodySun:
		lon, dist := sunEcliptic(t)
		pos = panchanga.EclipticPosition{Longitude: lon, Distance: dist}
	case panchanga.BodyMoon:
		lon, lat, dist := moonEcliptic(jde)
		pos = panchanga.EclipticPosition{Longitude: lon, Latitude: lat, Distance: dist}
	case panchanga.BodyRahu:
		pos = panchanga.EclipticPosition{Longitude: meanLunarNode(jde)}
	case panchanga.BodyMars, panchanga.BodyMercury, panchanga.BodyJupiter, panchanga.BodyVenus, panchanga.BodySaturn:
		lon, lat, dist, err := e.planetEcliptic(body, jde)
		if err != nil {
			return panchanga.EclipticPosition{}, err
		}
		pos = panchanga.EclipticPosition{Longitude: lon, Latitude: lat, Distance: dist}
	default:
		return panchanga.EclipticPosition{}, fmt.Errorf("no ephemeris entry for body %q", body)
	}

	pos.Longitude = panchanga.NormalizeDegrees(pos.Longitude - lahiriAyanamsa(t))
	return pos, nil
}

func centuries(jd panchanga.JulianDay) float64 {
	return base.J2000Century(float64(jd))
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func deg(rad float64) float64 { return rad * 180 / math.Pi }

// lahiriAyanamsa approximates the Lahiri sidereal offset in degrees for a
// Julian-century offset from J2000. No ecosystem astronomy library models the
// Lahiri zero point, so the polynomial stays local.
func lahiriAyanamsa(t float64) float64 {
	return 23.853 + 1.39697*t + 0.000308*t*t
}

// meanObliquity of the ecliptic in degrees.
func meanObliquity(jde float64) float64 {
	return nutation.MeanObliquity(jde).Deg()
}

// gmstDegrees is Greenwich mean sidereal time expressed as an angle, 240
// sidereal seconds per degree.
func gmstDegrees(jd panchanga.JulianDay) float64 {
	return panchanga.NormalizeDegrees(sidereal.Mean(float64(jd)).Sec() / 240)
}
