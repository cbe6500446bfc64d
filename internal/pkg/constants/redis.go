package constants

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo      = "drivers:geo"        // GeoHash set of all driver locations
	KeyDriverPresence = "driver:presence:%s" // Format: driver:presence:{driver_id}
)
