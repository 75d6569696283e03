package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/location-index/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name                           string
		latMin, lonMin, latMax, lonMax float64
		wantErr                        bool
	}{
		{name: "world", latMin: -90, lonMin: -180, latMax: 90, lonMax: 180},
		{name: "degenerate point rectangle", latMin: 1, lonMin: 2, latMax: 1, lonMax: 2},
		{name: "lat min greater than max", latMin: 10, lonMin: 0, latMax: 5, lonMax: 1, wantErr: true},
		{name: "lon min greater than max", latMin: 0, lonMin: 10, latMax: 1, lonMax: 5, wantErr: true},
		{name: "nan bound", latMin: math.NaN(), lonMin: 0, latMax: 1, lonMax: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := NewRectangle(tt.latMin, tt.lonMin, tt.latMax, tt.lonMax)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latMin, rect.GetLatMin())
			assert.Equal(t, tt.lonMin, rect.GetLonMin())
			assert.Equal(t, tt.latMax, rect.GetLatMax())
			assert.Equal(t, tt.lonMax, rect.GetLonMax())
		})
	}

	t.Run("translated message", func(t *testing.T) {
		_, err := NewRectangle(10, 0, 5, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LatMin must be less than or equal to LatMax")
	})

	t.Run("must panics on invalid bounds", func(t *testing.T) {
		assert.Panics(t, func() { MustNewRectangle(1, 1, 0, 0) })
	})
}

func TestRectangleContains(t *testing.T) {
	rect := MustNewRectangle(-10, -20, 10, 20)

	tests := []struct {
		name     string
		lat, lon float64
		expect   bool
	}{
		{name: "inside", lat: 0, lon: 0, expect: true},
		{name: "on lat min edge", lat: -10, lon: 5, expect: true},
		{name: "on corner", lat: 10, lon: 20, expect: true},
		{name: "above lat max", lat: 10.0001, lon: 0, expect: false},
		{name: "left of lon min", lat: 0, lon: -20.0001, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, rect.Contains(tt.lat, tt.lon))
			p := NewPoint(NewPointOptionsWithoutValue[int](tt.lat, tt.lon))
			assert.Equal(t, tt.expect, rect.ContainsPoint(p))
		})
	}
}

func TestRectangleIntersects(t *testing.T) {
	rect := MustNewRectangle(0, 0, 10, 10)

	tests := []struct {
		name   string
		other  Rectangle
		expect bool
	}{
		{name: "overlapping", other: MustNewRectangle(5, 5, 15, 15), expect: true},
		{name: "enclosed", other: MustNewRectangle(2, 2, 3, 3), expect: true},
		{name: "enclosing", other: MustNewRectangle(-5, -5, 15, 15), expect: true},
		{name: "shared edge", other: MustNewRectangle(10, 0, 20, 10), expect: true},
		{name: "shared corner", other: MustNewRectangle(10, 10, 20, 20), expect: true},
		{name: "disjoint lat", other: MustNewRectangle(10.5, 0, 20, 10), expect: false},
		{name: "disjoint lon", other: MustNewRectangle(0, -5, 10, -0.5), expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, rect.Intersects(tt.other))
			assert.Equal(t, tt.expect, tt.other.Intersects(rect))
		})
	}
}

func TestQuadrants(t *testing.T) {
	quadrants := WorldRectangle().Quadrants()

	assert.Equal(t, MustNewRectangle(0, 0, 90, 180), quadrants[NE])
	assert.Equal(t, MustNewRectangle(-90, 0, 0, 180), quadrants[NW])
	assert.Equal(t, MustNewRectangle(-90, -180, 0, 0), quadrants[SW])
	assert.Equal(t, MustNewRectangle(0, -180, 90, 0), quadrants[SE])

	t.Run("midline belongs to every adjoining quadrant", func(t *testing.T) {
		for _, q := range quadrants {
			assert.True(t, q.Contains(0, 0))
		}
	})
}

func TestClamp(t *testing.T) {
	rect := MustNewRectangle(0, 0, 10, 10)

	lat, lon := rect.Clamp(5, 5)
	assert.Equal(t, 5.0, lat)
	assert.Equal(t, 5.0, lon)

	lat, lon = rect.Clamp(-3, 12)
	assert.Equal(t, 0.0, lat)
	assert.Equal(t, 10.0, lon)

	assert.Equal(t, 0.0, DistanceToRectangle(5, 5, rect))
	assert.InDelta(t, HaversineDistance(12, 5, 10, 5), DistanceToRectangle(12, 5, rect), 1e-9)
}

func TestRectangleString(t *testing.T) {
	assert.Equal(t, "[-90,-180,90,180]", WorldRectangle().String())
}
