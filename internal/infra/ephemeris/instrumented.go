package ephemeris

import (
	"context"
	"time"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	"github.com/vedicastro/panchanga-api/pkg/metrics"
)

// Instrumented decorates an Ephemeris with per-operation lookup duration
// metrics. It adds no behavior of its own.
type Instrumented struct {
	next      panchanga.Ephemeris
	collector *metrics.Collector
}

// NewInstrumented wraps next with metrics collection.
func NewInstrumented(next panchanga.Ephemeris, collector *metrics.Collector) *Instrumented {
	return &Instrumented{next: next, collector: collector}
}

func (i *Instrumented) Longitude(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
	defer i.observe("longitude", time.Now())
	return i.next.Longitude(ctx, jd, body)
}

func (i *Instrumented) RiseSet(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body, lat, lon float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
	defer i.observe("riseset", time.Now())
	return i.next.RiseSet(ctx, jd, body, lat, lon, kind)
}

func (i *Instrumented) Ascendant(ctx context.Context, jd panchanga.JulianDay, lat, lon float64) (float64, error) {
	defer i.observe("ascendant", time.Now())
	return i.next.Ascendant(ctx, jd, lat, lon)
}

func (i *Instrumented) observe(operation string, start time.Time) {
	i.collector.EphemerisLookupDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
