package geo

import "math"

const (
	earthRadiusKM = 6371.0
)

// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// HaversineDistance returns the great-circle distance in km between two
// coordinates given in degrees.
func HaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latTwo-latOne) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longTwo-longOne)
	centralAngleRad := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * centralAngleRad
}

// DistanceToRectangle approximates the distance between (lat, lon) and the
// nearest point of rect: the query is clamped into the rectangle and measured
// with HaversineDistance. The clamp is planar and does not unwrap the
// antimeridian. At high latitude or for large rectangles the true nearest
// point can be closer than the clamped one, so the result overestimates.
func DistanceToRectangle(lat, lon float64, rect Rectangle) float64 {
	closestLat, closestLon := rect.Clamp(lat, lon)
	return HaversineDistance(lat, lon, closestLat, closestLon)
}
