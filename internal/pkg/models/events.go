package models

// Realtime event type discriminators (wire values)
const (
	EventTypeNewRideRequest     = "NEW_RIDE_REQUEST"
	EventTypeRideAccepted       = "RIDE_ACCEPTED"
	EventTypeStatusUpdate       = "STATUS_UPDATE"
	EventTypeApplicationDecided = "APPLICATION_DECIDED"
)

// NewRideRequestEvent is broadcast to the driver pool when a ride is requested
type NewRideRequestEvent struct {
	Type        string     `json:"type"`
	RideID      int64      `json:"rideId"`
	PassengerID string     `json:"passengerId"`
	Pickup      Coordinate `json:"pickup"`
	Dropoff     Coordinate `json:"dropoff"`
	Fare        int        `json:"fare"`
	DistanceKm  float64    `json:"distanceKm"`
}

// RideAcceptedEvent is delivered to the ride's parties when a driver accepts
type RideAcceptedEvent struct {
	Type        string `json:"type"`
	RideID      int64  `json:"rideId"`
	DriverID    string `json:"driverId"`
	PassengerID string `json:"passengerId"`
}

// StatusUpdateEvent is delivered to the ride's parties on a terminal transition
type StatusUpdateEvent struct {
	Type        string     `json:"type"`
	RideID      int64      `json:"rideId"`
	Status      RideStatus `json:"status"`
	UpdaterID   string     `json:"updaterId"`
	PassengerID string     `json:"passengerId"`
	DriverID    string     `json:"driverId,omitempty"`
}

// ApplicationDecidedEvent is delivered to the applicant after an admin verdict
type ApplicationDecidedEvent struct {
	Type          string            `json:"type"`
	ApplicationID int64             `json:"applicationId"`
	UserID        string            `json:"userId"`
	Status        ApplicationStatus `json:"status"`
}
