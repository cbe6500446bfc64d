package constants

// NATS Subjects
const (
	// Ride lifecycle events
	SubjectRideRequested = "ride.requested"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideStatus    = "ride.status"

	// Driver verification events
	SubjectApplicationSubmitted = "driver.application.submitted"
	SubjectApplicationDecided   = "driver.application.decided"
)
