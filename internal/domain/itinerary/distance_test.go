package itinerary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Paris to London, roughly 343.5 km great-circle.
	km := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	require.InDelta(t, 343.5, km, 1.0)
}

func TestHaversine_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{48.8566, 2.3522, 51.5074, -0.1278},
		{35.6762, 139.6503, -33.8688, 151.2093},
		{0, 0, 0, 180},
		{89.9, 10, -89.9, -170},
	}
	for _, p := range pairs {
		require.Equal(t, Haversine(p[0], p[1], p[2], p[3]), Haversine(p[2], p[3], p[0], p[1]))
	}
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	require.Zero(t, Haversine(40.7128, -74.0060, 40.7128, -74.0060))
}
