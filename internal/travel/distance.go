package travel

import (
	"math"
	"strings"
)

// Location is a named place, optionally with coordinates. The advisory
// engine works from free-text activity locations, so coordinates are
// usually absent and distance falls back to a deterministic pseudo-distance.
type Location struct {
	Name string
	Lat  *float64
	Lon  *float64
}

const earthRadiusKm = 6371

// Pseudo-distance fallback range for name-only location pairs.
const (
	samePlaceKm   = 0.05
	pseudoMinKm   = 0.3
	pseudoMaxKm   = 5.0
	pseudoBuckets = 1000
)

// FNV-1a 32-bit parameters. The fallback distance must be bit-identical
// across implementations, so the hash is spelled out rather than left to
// a library: h starts at the offset basis, and per input byte
// h = (h XOR byte) * prime, all in uint32 arithmetic.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

func fnv1a(s string) uint32 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// DistanceKm resolves a distance in kilometers between two locations.
// With coordinates on both ends it returns the haversine great-circle
// distance. Otherwise it derives a stable pseudo-distance from the pair of
// names: identical normalized names mean "same place" (50 m); distinct
// names hash the ordered pair into [0.3, 5.0] km. The hash input includes
// direction ("from->to"), so the fallback is intentionally not symmetric.
func DistanceKm(from, to Location) float64 {
	if d, ok := haversineKm(from, to); ok {
		return d
	}
	return pseudoDistanceKm(from.Name, to.Name)
}

func haversineKm(a, b Location) (float64, bool) {
	if a.Lat == nil || a.Lon == nil || b.Lat == nil || b.Lon == nil {
		return 0, false
	}
	lat1 := toRad(*a.Lat)
	lat2 := toRad(*b.Lat)
	dLat := toRad(*b.Lat - *a.Lat)
	dLon := toRad(*b.Lon - *a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c, true
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func pseudoDistanceKm(fromName, toName string) float64 {
	if normalizePlace(fromName) == normalizePlace(toName) {
		return samePlaceKm
	}
	seed := fnv1a(fromName + "->" + toName)
	return pseudoMinKm + float64(seed%pseudoBuckets)/pseudoBuckets*(pseudoMaxKm-pseudoMinKm)
}

func normalizePlace(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
