package usecase

import (
	"testing"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func defaultPricing() models.PricingConfig {
	return models.PricingConfig{
		BaseFare:    50,
		PerKmRate:   40,
		RoadFactor:  1.5,
		MinimumFare: 100,
		Currency:    "NPR",
	}
}

func TestEstimateFare_ZeroDistanceGetsMinimumFare(t *testing.T) {
	point := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}

	estimate := EstimateFare(defaultPricing(), point, point)

	assert.Equal(t, 0.0, estimate.DistanceKm)
	assert.Equal(t, 100, estimate.Fare)
}

func TestEstimateFare_ShortTripFloorsAtMinimum(t *testing.T) {
	// ~0.55 km straight line: base 50 + 0.55*1.5*40 = ~83, below the floor.
	pickup := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}
	dropoff := models.Coordinate{Latitude: 27.7172, Longitude: 85.3296}

	estimate := EstimateFare(defaultPricing(), pickup, dropoff)

	assert.Equal(t, 100, estimate.Fare)
	assert.InDelta(t, 0.83, estimate.DistanceKm, 0.1)
}

func TestEstimateFare_LongTripPricedByDistance(t *testing.T) {
	// Kathmandu to Pokhara, ~143 km straight line.
	pickup := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}
	dropoff := models.Coordinate{Latitude: 28.2096, Longitude: 83.9856}

	estimate := EstimateFare(defaultPricing(), pickup, dropoff)

	assert.InDelta(t, 214.5, estimate.DistanceKm, 5.0)
	// fare = round(50 + distanceKm * 40)
	assert.InDelta(t, 50+estimate.DistanceKm*40, float64(estimate.Fare), 0.51)
	assert.Greater(t, estimate.Fare, 100)
}

func TestEstimateFare_RoadFactorScalesDistance(t *testing.T) {
	pickup := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}
	dropoff := models.Coordinate{Latitude: 27.7000, Longitude: 85.3000}

	pricing := defaultPricing()
	pricing.RoadFactor = 1.0
	flat := EstimateFare(pricing, pickup, dropoff)

	pricing.RoadFactor = 2.0
	doubled := EstimateFare(pricing, pickup, dropoff)

	assert.InDelta(t, flat.DistanceKm*2, doubled.DistanceKm, 0.001)
}
