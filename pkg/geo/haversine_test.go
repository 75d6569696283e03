package geo

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func s2Distance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	angle := s2.LatLngFromDegrees(latOne, lonOne).Distance(s2.LatLngFromDegrees(latTwo, lonTwo))
	return angle.Radians() * earthRadiusKM
}

func TestHaversineDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(23.80, 90.40, 23.80, 90.40))
	})

	t.Run("dhaka points", func(t *testing.T) {
		dist := HaversineDistance(23.80, 90.40, 23.81, 90.41)
		assert.InDelta(t, 1.5, dist, 0.1)
	})

	t.Run("quarter meridian", func(t *testing.T) {
		assert.InDelta(t, 10007.543, HaversineDistance(0, 0, 90, 0), 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, HaversineDistance(-7.55, 110.8, 23.8, 90.4),
			HaversineDistance(23.8, 90.4, -7.55, 110.8), 1e-9)
	})

	t.Run("matches s2 great circle distance", func(t *testing.T) {
		rd := rand.New(rand.NewSource(42))
		for i := 0; i < 1000; i++ {
			latOne, lonOne := rd.Float64()*180-90, rd.Float64()*360-180
			latTwo, lonTwo := rd.Float64()*180-90, rd.Float64()*360-180
			assert.InDelta(t, s2Distance(latOne, lonOne, latTwo, lonTwo),
				HaversineDistance(latOne, lonOne, latTwo, lonTwo), 1e-6)
		}
	})
}
