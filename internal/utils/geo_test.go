package utils

import (
	"testing"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		p1        models.Coordinate
		p2        models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			p1:        models.Coordinate{Latitude: 27.7172, Longitude: 85.3240},
			p2:        models.Coordinate{Latitude: 27.7172, Longitude: 85.3240},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Kathmandu city center to Thamel (short hop)",
			p1:        models.Coordinate{Latitude: 27.7000, Longitude: 85.3000},
			p2:        models.Coordinate{Latitude: 27.7172, Longitude: 85.3240},
			expected:  3.0, // roughly 3 km
			tolerance: 0.5,
		},
		{
			name:      "Kathmandu to Pokhara (approximately)",
			p1:        models.Coordinate{Latitude: 27.7172, Longitude: 85.3240},
			p2:        models.Coordinate{Latitude: 28.2096, Longitude: 83.9856},
			expected:  143.0,
			tolerance: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.p1, tt.p2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Coordinate{Latitude: 27.7000, Longitude: 85.3000}
	b := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}

	assert.Equal(t, CalculateDistance(a, b), CalculateDistance(b, a))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	c := models.Coordinate{Latitude: 27.7172, Longitude: 85.3240}

	hash := EncodeLocation(c, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, c.Latitude, lat, 0.01)
	assert.InDelta(t, c.Longitude, lng, 0.01)
}
