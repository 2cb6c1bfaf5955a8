package travel

import (
	"errors"
	"math"

	"github.com/triply-app/triply/internal/domain"
)

// ErrInvalidSettings is returned when a walk duration is requested with a
// non-positive walking speed.
var ErrInvalidSettings = errors.New("invalid travel settings: walking speed must be positive")

// Fixed city-speed model constants.
const (
	driveSpeedKmh      = 28
	driveOverheadMin   = 4
	transitSpeedKmh    = 22
	transitOverheadMin = 6

	minDurationMin = 1
	maxDurationMin = 120
)

// Estimate is the output of the travel time model. Mode is always a
// resolved computation mode, never auto. TotalMin = DurationMin + BufferMin.
type Estimate struct {
	DistanceKm  float64
	DurationMin float64
	BufferMin   float64
	TotalMin    float64
	Mode        domain.TravelMode
}

// EstimateTravel converts the distance between from and to into a travel
// duration for the given mode. Mode auto computes all three concrete modes
// and takes the fastest; the reported Mode is the one that won. Durations
// are clamped to [1, 120] minutes.
func EstimateTravel(from, to Location, mode domain.TravelMode, s domain.TravelSettings) (Estimate, error) {
	distanceKm := DistanceKm(from, to)

	durationMin, resolved, err := durationFor(distanceKm, mode, s)
	if err != nil {
		return Estimate{}, err
	}
	durationMin = clamp(durationMin, minDurationMin, maxDurationMin)

	bufferMin := s.DefaultBufferMin
	return Estimate{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		BufferMin:   bufferMin,
		TotalMin:    durationMin + bufferMin,
		Mode:        resolved,
	}, nil
}

func durationFor(distanceKm float64, mode domain.TravelMode, s domain.TravelSettings) (float64, domain.TravelMode, error) {
	switch mode {
	case domain.ModeDrive:
		return distanceKm/driveSpeedKmh*60 + driveOverheadMin, domain.ModeDrive, nil
	case domain.ModeTransit:
		return distanceKm/transitSpeedKmh*60 + transitOverheadMin, domain.ModeTransit, nil
	case domain.ModeAuto:
		walk, _, err := durationFor(distanceKm, domain.ModeWalk, s)
		if err != nil {
			return 0, "", err
		}
		drive, _, _ := durationFor(distanceKm, domain.ModeDrive, s)
		transit, _, _ := durationFor(distanceKm, domain.ModeTransit, s)

		best, resolved := walk, domain.ModeWalk
		if drive < best {
			best, resolved = drive, domain.ModeDrive
		}
		if transit < best {
			best, resolved = transit, domain.ModeTransit
		}
		return best, resolved, nil
	default:
		// Walk, and any unknown mode, uses the walking model.
		if s.WalkingSpeedKmh <= 0 {
			return 0, "", ErrInvalidSettings
		}
		return distanceKm / s.WalkingSpeedKmh * 60, domain.ModeWalk, nil
	}
}

// PickAutoMode is the threshold-based mode selection policy used where the
// caller needs to know which concrete mode to present: short hops are
// walked, mid-range hops take transit, anything else drives. It is
// deliberately distinct from auto's minimize-over-all-modes duration
// shortcut; the two policies serve different call sites and must not be
// unified.
func PickAutoMode(distanceKm float64) domain.TravelMode {
	switch {
	case distanceKm < 1.5:
		return domain.ModeWalk
	case distanceKm < 6:
		return domain.ModeTransit
	default:
		return domain.ModeDrive
	}
}

// EstimateAuto resolves the mode via PickAutoMode on the pair's distance,
// then estimates with that concrete mode.
func EstimateAuto(from, to Location, s domain.TravelSettings) (Estimate, error) {
	mode := PickAutoMode(DistanceKm(from, to))
	return EstimateTravel(from, to, mode, s)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
