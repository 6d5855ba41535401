package ephemeris

import (
	"context"
	"fmt"
	"math"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

// Ascendant returns the sidereal (Lahiri) longitude of the first Placidus
// house cusp, which coincides with the ascendant, for an observer at lat/lon
// (degrees, east positive) at jd.
func (e *Engine) Ascendant(ctx context.Context, jd panchanga.JulianDay, lat, lon float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if math.Abs(lat) >= 89.9 {
		return 0, fmt.Errorf("ascendant undefined at latitude %f", lat)
	}

	t := centuries(jd)
	ramc := rad(panchanga.NormalizeDegrees(gmstDegrees(jd) + lon))
	eps := rad(meanObliquity(float64(jd)))
	phi := rad(lat)

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	tropical := panchanga.NormalizeDegrees(deg(asc))

	return panchanga.NormalizeDegrees(tropical - lahiriAyanamsa(t)), nil
}
