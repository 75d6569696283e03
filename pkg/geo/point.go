package geo

import "fmt"

type LatLon interface {
	Latitude() float64
	Longitude() float64
}

// PointOptions is what NewPoint copies a point from. Value reports false when
// the point carries no payload.
type PointOptions[T comparable] interface {
	LatLon
	Value() (T, bool)
}

type pointOptions[T comparable] struct {
	lat, lon float64
	value    T
	hasValue bool
}

func NewPointOptions[T comparable](lat, lon float64, value T) PointOptions[T] {
	return pointOptions[T]{lat: lat, lon: lon, value: value, hasValue: true}
}

func NewPointOptionsWithoutValue[T comparable](lat, lon float64) PointOptions[T] {
	return pointOptions[T]{lat: lat, lon: lon}
}

func (o pointOptions[T]) Latitude() float64 {
	return o.lat
}

func (o pointOptions[T]) Longitude() float64 {
	return o.lon
}

func (o pointOptions[T]) Value() (T, bool) {
	return o.value, o.hasValue
}

// Point is an immutable coordinate with an optional payload. Coordinates are
// not range checked.
type Point[T comparable] struct {
	latitude  float64
	longitude float64
	value     T
	hasValue  bool
}

func NewPoint[T comparable](opts PointOptions[T]) Point[T] {
	value, ok := opts.Value()
	return Point[T]{
		latitude:  opts.Latitude(),
		longitude: opts.Longitude(),
		value:     value,
		hasValue:  ok,
	}
}

func (p Point[T]) Latitude() float64 {
	return p.latitude
}

func (p Point[T]) Longitude() float64 {
	return p.longitude
}

func (p Point[T]) Value() (T, bool) {
	return p.value, p.hasValue
}

// Equal compares coordinates and payload. Two points without payload are equal
// when their coordinates are.
func (p Point[T]) Equal(other Point[T]) bool {
	if p.latitude != other.latitude || p.longitude != other.longitude {
		return false
	}
	if p.hasValue != other.hasValue {
		return false
	}
	return !p.hasValue || p.value == other.value
}

func (p Point[T]) String() string {
	s := "[" + formatFloat(p.latitude) + "," + formatFloat(p.longitude) + "]"
	if p.hasValue {
		s += fmt.Sprintf(" %v", p.value)
	}
	return s
}
