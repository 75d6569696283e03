package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqual(t *testing.T) {
	dhakaA := NewPoint(NewPointOptions(23.80, 90.40, "Dhaka-A"))

	tests := []struct {
		name   string
		other  Point[string]
		expect bool
	}{
		{name: "same values", other: NewPoint(NewPointOptions(23.80, 90.40, "Dhaka-A")), expect: true},
		{name: "different payload", other: NewPoint(NewPointOptions(23.80, 90.40, "Dhaka-B")), expect: false},
		{name: "different latitude", other: NewPoint(NewPointOptions(23.81, 90.40, "Dhaka-A")), expect: false},
		{name: "different longitude", other: NewPoint(NewPointOptions(23.80, 90.41, "Dhaka-A")), expect: false},
		{name: "missing payload", other: NewPoint(NewPointOptionsWithoutValue[string](23.80, 90.40)), expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, dhakaA.Equal(tt.other))
			assert.Equal(t, tt.expect, tt.other.Equal(dhakaA))
		})
	}

	t.Run("both without payload", func(t *testing.T) {
		a := NewPoint(NewPointOptionsWithoutValue[string](1, 2))
		b := NewPoint(NewPointOptionsWithoutValue[string](1, 2))
		assert.True(t, a.Equal(b))
	})

	t.Run("empty payload is still a payload", func(t *testing.T) {
		a := NewPoint(NewPointOptions(1, 2, ""))
		b := NewPoint(NewPointOptionsWithoutValue[string](1, 2))
		assert.False(t, a.Equal(b))
	})
}

func TestNewPoint(t *testing.T) {
	place := NewPlace(7, "Lalbagh Fort", "Dhaka", "historic")
	p := NewPoint(NewPointOptions(23.7188, 90.3882, place))

	assert.Equal(t, 23.7188, p.Latitude())
	assert.Equal(t, 90.3882, p.Longitude())
	value, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, place, value)

	t.Run("out of range coordinates are kept", func(t *testing.T) {
		p := NewPoint(NewPointOptionsWithoutValue[int](120, 400))
		assert.Equal(t, 120.0, p.Latitude())
		assert.Equal(t, 400.0, p.Longitude())
		_, ok := p.Value()
		assert.False(t, ok)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "[23.8,90.4] Dhaka-A", NewPoint(NewPointOptions(23.80, 90.40, "Dhaka-A")).String())
		assert.Equal(t, "[1,2]", NewPoint(NewPointOptionsWithoutValue[int](1, 2)).String())
	})
}

func TestOSMNodeToPlacePoint(t *testing.T) {
	node := NewOSMNode(11, -7.5680, 110.8116, map[string]string{
		"name":      "Pasar Gede",
		"addr:city": "Surakarta",
		"amenity":   "marketplace",
	})

	p := node.ToPlacePoint()
	assert.Equal(t, -7.5680, p.Latitude())
	assert.Equal(t, 110.8116, p.Longitude())
	place, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, NewPlace(11, "Pasar Gede", "Surakarta", "marketplace"), place)
}
