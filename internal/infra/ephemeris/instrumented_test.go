package ephemeris

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	"github.com/vedicastro/panchanga-api/pkg/metrics"
)

func TestInstrumentedDelegatesAndObserves(t *testing.T) {
	engine, err := New(Config{})
	require.NoError(t, err)

	collector := metrics.NewCollector("test")
	wrapped := NewInstrumented(engine, collector)

	pos, err := wrapped.Longitude(context.Background(), newYearJD, panchanga.BodySun)
	require.NoError(t, err)

	direct, err := engine.Longitude(context.Background(), newYearJD, panchanga.BodySun)
	require.NoError(t, err)
	require.Equal(t, direct, pos)

	_, err = wrapped.Ascendant(context.Background(), newYearJD, chennaiLat, chennaiLon)
	require.NoError(t, err)

	families, err := collector.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() == "test_ephemeris_lookup_duration_seconds" {
			found = true
			require.NotEmpty(t, family.GetMetric())
		}
	}
	require.True(t, found, "lookup duration histogram should be registered and observed")
}

func TestInstrumentedObservesFailedLookups(t *testing.T) {
	engine, err := New(Config{})
	require.NoError(t, err)

	collector := metrics.NewCollector("test")
	wrapped := NewInstrumented(engine, collector)

	_, err = wrapped.Longitude(context.Background(), newYearJD, panchanga.BodyKetu)
	require.Error(t, err)

	families, gatherErr := collector.Registry.Gather()
	require.NoError(t, gatherErr)
	require.NotEmpty(t, families)
}
