package constants

// WebSocket inbound event types
const (
	EventPing           = "ping"
	EventPong           = "pong"
	EventLocationUpdate = "location_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorUnauthorized    = "unauthorized"
	ErrorInvalidLocation = "invalid_location"
	ErrorInternalError   = "internal_error"
)
