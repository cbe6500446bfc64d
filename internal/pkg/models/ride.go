package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride request
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusDeclined  RideStatus = "declined"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusCompleted RideStatus = "completed"
)

// IsTerminal reports whether no further transition is allowed from the status
func (s RideStatus) IsTerminal() bool {
	switch s {
	case RideStatusDeclined, RideStatusCancelled, RideStatusCompleted:
		return true
	}
	return false
}

// Coordinate is a geographic point in floating point degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the coordinate is inside the WGS84 domain
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// RideRequest represents a ride record. Fare is computed once at creation and
// never recomputed; DriverID is bound by the accepting driver.
type RideRequest struct {
	ID          int64      `json:"rideId" db:"id"`
	PassengerID uuid.UUID  `json:"passengerId" db:"passenger_id"`
	DriverID    *uuid.UUID `json:"driverId,omitempty" db:"driver_id"`
	Pickup      Coordinate `json:"pickup"`
	Dropoff     Coordinate `json:"dropoff"`
	DistanceKm  float64    `json:"distanceKm" db:"distance_km"`
	Fare        int        `json:"fare" db:"fare"`
	Status      RideStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateRideRequest is the payload for requesting a ride
type CreateRideRequest struct {
	PickupLat  float64 `json:"pickupLat"`
	PickupLng  float64 `json:"pickupLng"`
	DropoffLat float64 `json:"dropoffLat"`
	DropoffLng float64 `json:"dropoffLng"`
}

// CreateRideResponse is returned after a ride request is created
type CreateRideResponse struct {
	RideID     int64   `json:"rideId"`
	Fare       int     `json:"fare"`
	DistanceKm float64 `json:"distanceKm"`
}

// UpdateRideStatusRequest is the payload for moving a ride to a terminal state
type UpdateRideStatusRequest struct {
	Status RideStatus `json:"status"`
}
