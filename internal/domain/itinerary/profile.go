package itinerary

import (
	"math"

	"github.com/remvana/nestmap/internal/domain/activity"
)

// Band holds the assumed speed and conflict threshold for legs up to MaxKm.
type Band struct {
	MaxKm        float64
	SpeedKmh     float64
	ThresholdMin int
}

// Profile maps a travel mode to its distance bands, ordered by MaxKm
// ascending with an open-ended last band. It is plain data passed into the
// builder; callers that want different heuristics construct their own.
type Profile map[activity.TravelMode][]Band

// DefaultProfile returns the built-in speed and threshold heuristics.
// Thresholds widen with distance: a six-hour drive between cities is an
// expected leg, the same duration for a cross-town hop signals an itinerary
// error.
func DefaultProfile() Profile {
	return Profile{
		activity.ModeWalking: {
			{MaxKm: 2, SpeedKmh: 4.8, ThresholdMin: 30},
			{MaxKm: 8, SpeedKmh: 4.8, ThresholdMin: 50},
			{MaxKm: math.Inf(1), SpeedKmh: 4.0, ThresholdMin: 50},
		},
		activity.ModeDriving: {
			{MaxKm: 10, SpeedKmh: 30, ThresholdMin: 60},
			{MaxKm: 150, SpeedKmh: 70, ThresholdMin: 180},
			{MaxKm: math.Inf(1), SpeedKmh: 105, ThresholdMin: 480},
		},
		activity.ModeTransit: {
			{MaxKm: 10, SpeedKmh: 25, ThresholdMin: 45},
			{MaxKm: 150, SpeedKmh: 60, ThresholdMin: 240},
			{MaxKm: math.Inf(1), SpeedKmh: 90, ThresholdMin: 480},
		},
	}
}

// bandFor selects the band for a leg. Unknown modes fall back to walking.
func (p Profile) bandFor(mode activity.TravelMode, km float64) Band {
	bands, ok := p[mode]
	if !ok || len(bands) == 0 {
		bands = p[activity.ModeWalking]
	}
	for _, b := range bands {
		if km <= b.MaxKm {
			return b
		}
	}
	return bands[len(bands)-1]
}
