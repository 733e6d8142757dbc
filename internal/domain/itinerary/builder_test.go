package itinerary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/remvana/nestmap/internal/domain/activity"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func act(id, date, clock string, mode activity.TravelMode, lat, lon *float64) activity.Activity {
	return activity.Activity{
		ID:        id,
		TripID:    "trip1",
		Title:     "Activity " + id,
		Date:      date,
		Time:      clock,
		Mode:      mode,
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestBuild_GroupsAndOrdersByDay(t *testing.T) {
	acts := []activity.Activity{
		act("a3", "2024-06-02", "10:00", activity.ModeWalking, nil, nil),
		act("a1", "2024-06-01", "14:00", activity.ModeWalking, nil, nil),
		act("a2", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
	}

	it := Build(acts, DefaultProfile())

	require.Len(t, it.Days, 2)
	require.Equal(t, "2024-06-01", it.Days[0].Date.String())
	require.Equal(t, "2024-06-02", it.Days[1].Date.String())
	require.Equal(t, "a2", it.Days[0].Items[0].Activity.ID)
	require.Equal(t, "a1", it.Days[0].Items[1].Activity.ID)
	require.Equal(t, "a3", it.Days[1].Items[0].Activity.ID)
	require.Empty(t, it.Unscheduled)
}

func TestBuild_UnpaddedTimesSortChronologically(t *testing.T) {
	acts := []activity.Activity{
		act("late", "2024-06-01", "10:30", activity.ModeWalking, nil, nil),
		act("early", "2024-06-01", "9:00", activity.ModeWalking, nil, nil),
	}

	it := Build(acts, DefaultProfile())

	require.Len(t, it.Days, 1)
	require.Equal(t, "early", it.Days[0].Items[0].Activity.ID)
	require.Equal(t, "late", it.Days[0].Items[1].Activity.ID)
}

func TestBuild_FirstOfDayNeverAnnotated(t *testing.T) {
	lat1, lon1 := coords(48.8566, 2.3522)
	lat2, lon2 := coords(48.8606, 2.3376)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeWalking, lat1, lon1),
		act("a2", "2024-06-01", "11:00", activity.ModeWalking, lat2, lon2),
		act("b1", "2024-06-02", "09:00", activity.ModeWalking, lat2, lon2),
	}

	it := Build(acts, DefaultProfile())

	for _, day := range it.Days {
		require.Nil(t, day.Items[0].Travel, "first activity of %s must not carry a travel estimate", day.Date)
	}
	require.NotNil(t, it.Days[0].Items[1].Travel)
}

func TestBuild_MissingCoordinatesSkipsEstimate(t *testing.T) {
	lat, lon := coords(48.8566, 2.3522)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeWalking, lat, lon),
		act("a2", "2024-06-01", "11:00", activity.ModeWalking, nil, nil),
		act("a3", "2024-06-01", "13:00", activity.ModeWalking, lat, lon),
	}

	it := Build(acts, DefaultProfile())

	items := it.Days[0].Items
	require.Nil(t, items[1].Travel, "activity without coordinates gets no estimate")
	require.False(t, items[1].TravelConflict)
	require.Nil(t, items[2].Travel, "previous activity without coordinates gets no estimate either")
}

func TestBuild_SameTimeConflict(t *testing.T) {
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
		act("a2", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
		act("a3", "2024-06-01", "10:00", activity.ModeWalking, nil, nil),
	}

	it := Build(acts, DefaultProfile())

	items := it.Days[0].Items
	require.True(t, items[0].TimeConflict)
	require.True(t, items[1].TimeConflict)
	require.False(t, items[2].TimeConflict)
}

func TestBuild_SameTimeConflict_UnpaddedEquivalent(t *testing.T) {
	acts := []activity.Activity{
		act("a1", "2024-06-01", "9:00", activity.ModeWalking, nil, nil),
		act("a2", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
	}

	it := Build(acts, DefaultProfile())

	require.True(t, it.Days[0].Items[0].TimeConflict)
	require.True(t, it.Days[0].Items[1].TimeConflict)
}

func TestBuild_WalkingConflict(t *testing.T) {
	// 0.045 degrees of latitude is ~5.0 km: over an hour on foot, well past
	// the 50 minute walking threshold.
	lat1, lon1 := coords(48.8566, 2.3522)
	lat2, lon2 := coords(48.9016, 2.3522)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeWalking, lat1, lon1),
		act("a2", "2024-06-01", "10:00", activity.ModeWalking, lat2, lon2),
	}

	it := Build(acts, DefaultProfile())

	leg := it.Days[0].Items[1]
	require.NotNil(t, leg.Travel)
	require.InDelta(t, 5.0, leg.Travel.DistanceKm, 0.1)
	require.Equal(t, 63, leg.Travel.Minutes)
	require.Equal(t, "1 hr 3 min walking", leg.Travel.Label)
	require.True(t, leg.TravelConflict)
}

func TestBuild_LongDrivingLegIsNotAConflict(t *testing.T) {
	// 5.4 degrees of latitude is ~600 km: hours of driving, but expected for
	// an intercity leg and under the long-range threshold.
	lat1, lon1 := coords(40.0, -3.7)
	lat2, lon2 := coords(45.4, -3.7)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "08:00", activity.ModeDriving, lat1, lon1),
		act("a2", "2024-06-01", "16:00", activity.ModeDriving, lat2, lon2),
	}

	it := Build(acts, DefaultProfile())

	leg := it.Days[0].Items[1]
	require.NotNil(t, leg.Travel)
	require.InDelta(t, 600.5, leg.Travel.DistanceKm, 0.5)
	require.Equal(t, 343, leg.Travel.Minutes)
	require.Equal(t, "5 hr 43 min driving", leg.Travel.Label)
	require.False(t, leg.TravelConflict)
}

func TestBuild_ShortDrivingHopUnderThresholdNoConflict(t *testing.T) {
	// ~8 km at 30 km/h urban driving is 16 min, under the 60 min threshold.
	lat1, lon1 := coords(40.0, -3.7)
	lat2, lon2 := coords(40.072, -3.7)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeDriving, lat1, lon1),
		act("a2", "2024-06-01", "09:30", activity.ModeDriving, lat2, lon2),
	}

	it := Build(acts, DefaultProfile())

	leg := it.Days[0].Items[1]
	require.NotNil(t, leg.Travel)
	require.Equal(t, 16, leg.Travel.Minutes)
	require.False(t, leg.TravelConflict)
}

func TestBuild_EmptyModeDefaultsToWalking(t *testing.T) {
	lat1, lon1 := coords(48.8566, 2.3522)
	lat2, lon2 := coords(48.8606, 2.3376)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", "", lat1, lon1),
		act("a2", "2024-06-01", "10:00", "", lat2, lon2),
	}

	it := Build(acts, DefaultProfile())

	leg := it.Days[0].Items[1]
	require.NotNil(t, leg.Travel)
	require.Equal(t, activity.ModeWalking, leg.Travel.Mode)
}

func TestBuild_InvalidDateGoesToUnscheduled(t *testing.T) {
	acts := []activity.Activity{
		act("good", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
		act("bad", "", "10:00", activity.ModeWalking, nil, nil),
		act("worse", "June 1", "11:00", activity.ModeWalking, nil, nil),
	}

	it := Build(acts, DefaultProfile())

	require.Len(t, it.Days, 1)
	require.Len(t, it.Days[0].Items, 1)
	require.Len(t, it.Unscheduled, 2)
	require.Equal(t, "bad", it.Unscheduled[0].ID)
	require.Equal(t, "worse", it.Unscheduled[1].ID)
}

func TestBuild_Idempotent(t *testing.T) {
	lat1, lon1 := coords(48.8566, 2.3522)
	lat2, lon2 := coords(48.9016, 2.3522)
	acts := []activity.Activity{
		act("a1", "2024-06-01", "09:00", activity.ModeWalking, lat1, lon1),
		act("a2", "2024-06-01", "09:00", activity.ModeWalking, lat2, lon2),
		act("a3", "2024-06-02", "9:30", activity.ModeDriving, lat1, lon1),
		act("a4", "", "10:00", activity.ModeWalking, nil, nil),
	}

	first := Build(acts, DefaultProfile())
	second := Build(acts, DefaultProfile())

	require.Equal(t, first, second)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	acts := []activity.Activity{
		act("a1", "2024-06-01", "14:00", activity.ModeWalking, nil, nil),
		act("a2", "2024-06-01", "09:00", activity.ModeWalking, nil, nil),
	}

	_ = Build(acts, DefaultProfile())

	require.Equal(t, "a1", acts[0].ID, "input order must be preserved")
	require.Equal(t, "a2", acts[1].ID)
}

func TestBuild_Empty(t *testing.T) {
	it := Build(nil, DefaultProfile())
	require.Empty(t, it.Days)
	require.Empty(t, it.Unscheduled)
}
