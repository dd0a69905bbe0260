package kernel_test

import (
	"math"
	"testing"

	"veggo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(28.6139, 77.2090)

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.Equal(t, 28.6139, p.Lat())
		assert.Equal(t, 77.2090, p.Lng())
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)
		require.Error(t, err)

		_, err = kernel.NewGeoPoint(-90.5, 0)
		require.Error(t, err)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.1)
		require.Error(t, err)

		_, err = kernel.NewGeoPoint(0, -181)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

// haversineReference recomputes the documented formula independently so the
// production implementation is checked bit-for-bit.
func haversineReference(lat1, lng1, lat2, lng2 float64) float64 {
	const r = 6371.0
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return r * c
}

func TestGeoPoint_HaversineTo(t *testing.T) {
	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)

		km, meters := p.HaversineTo(p)

		assert.Equal(t, 0.0, km)
		assert.Equal(t, 0.0, meters)
	})

	t.Run("symmetric", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)

		kmAB, _ := a.HaversineTo(b)
		kmBA, _ := b.HaversineTo(a)

		assert.Equal(t, kmAB, kmBA)
	})

	t.Run("matches_reference_formula", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)

		km, meters := a.HaversineTo(b)
		expected := haversineReference(28.6139, 77.2090, 28.7041, 77.1025)

		assert.Equal(t, expected, km)
		assert.Equal(t, km*1000, meters)
		assert.Positive(t, km)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 95.0, kernel.Round2(95.0))
	assert.Equal(t, 82.0, kernel.Round2(50+3.2*10))
	assert.Equal(t, 1.56, kernel.Round2(1.556))
	assert.Equal(t, 10.12, kernel.Round2(10.124))
}
