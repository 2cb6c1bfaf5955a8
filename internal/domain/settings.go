package domain

// Default travel settings applied when no stored row exists.
const (
	DefaultWalkingSpeedKmh = 4.5
	DefaultBufferMin       = 5
)

// TravelSettings holds the tunable inputs of the travel time model.
// Callers are expected to keep WalkingSpeedKmh in a sane range (roughly
// 2-7 km/h); the model itself only rejects non-positive values.
type TravelSettings struct {
	WalkingSpeedKmh  float64
	DefaultBufferMin float64
}

// DefaultTravelSettings returns the built-in defaults: 4.5 km/h walking
// speed and a 5 minute buffer.
func DefaultTravelSettings() TravelSettings {
	return TravelSettings{
		WalkingSpeedKmh:  DefaultWalkingSpeedKmh,
		DefaultBufferMin: DefaultBufferMin,
	}
}

// TravelPrefs is a stored settings row: the model inputs plus the user's
// default travel mode. One global row exists; a trip may carry an
// overriding row of its own.
type TravelPrefs struct {
	Mode     TravelMode
	Settings TravelSettings
}

// DefaultTravelPrefs returns the built-in preference row: walking mode
// with default settings.
func DefaultTravelPrefs() TravelPrefs {
	return TravelPrefs{
		Mode:     ModeWalk,
		Settings: DefaultTravelSettings(),
	}
}
