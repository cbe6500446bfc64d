package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distance
const EarthRadiusKm = 6371.0

// CalculateDistance calculates the great-circle distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(p1, p2 models.Coordinate) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
