package usecase

import (
	"math"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
)

// FareEstimate holds the pricing result for a pickup/dropoff pair.
type FareEstimate struct {
	DistanceKm float64
	Fare       int
}

// EstimateFare prices a trip from its straight-line distance. The haversine
// distance is scaled by the road factor to approximate actual road distance,
// then priced at the configured base fare plus per-kilometer rate. The result
// never drops below the minimum fare.
func EstimateFare(pricing models.PricingConfig, pickup, dropoff models.Coordinate) FareEstimate {
	roadKm := utils.CalculateDistance(pickup, dropoff) * pricing.RoadFactor
	fare := int(math.Round(pricing.BaseFare + roadKm*pricing.PerKmRate))
	if fare < pricing.MinimumFare {
		fare = pricing.MinimumFare
	}
	return FareEstimate{
		DistanceKm: roadKm,
		Fare:       fare,
	}
}
