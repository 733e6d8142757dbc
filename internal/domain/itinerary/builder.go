package itinerary

import (
	"fmt"
	"math"
	"sort"

	"github.com/remvana/nestmap/internal/domain/activity"
)

// Build groups a trip's activities into ordered per-day buckets and
// annotates each one with travel estimates and conflict flags. The input
// slice is not modified; every call recomputes all annotations from scratch.
func Build(acts []activity.Activity, profile Profile) Itinerary {
	var it Itinerary

	byDay := make(map[DayKey][]activity.Activity)
	for _, act := range acts {
		key, err := ParseDayKey(act.Date)
		if err != nil {
			it.Unscheduled = append(it.Unscheduled, act)
			continue
		}
		byDay[key] = append(byDay[key], act)
	}

	keys := make([]DayKey, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	for _, key := range keys {
		group := byDay[key]
		sort.SliceStable(group, func(i, j int) bool {
			return sortClock(group[i].Time) < sortClock(group[j].Time)
		})

		day := Day{Date: key, Items: make([]Item, len(group))}
		for i, act := range group {
			item := Item{
				Activity:     act,
				TimeConflict: hasTimeCollision(group, i),
			}
			if i > 0 {
				item.Travel, item.TravelConflict = estimateLeg(group[i-1], act, profile)
			}
			day.Items[i] = item
		}
		it.Days = append(it.Days, day)
	}

	return it
}

// estimateLeg computes the travel annotation from prev to cur. It returns
// nil when either activity lacks coordinates; the second result reports
// whether the estimate exceeds the mode's threshold for that distance.
func estimateLeg(prev, cur activity.Activity, profile Profile) (*TravelEstimate, bool) {
	if !prev.HasCoordinates() || !cur.HasCoordinates() {
		return nil, false
	}

	km := Haversine(*prev.Latitude, *prev.Longitude, *cur.Latitude, *cur.Longitude)
	mode := cur.Mode
	if mode == "" {
		mode = activity.ModeWalking
	}
	band := profile.bandFor(mode, km)
	minutes := int(math.Round(km / band.SpeedKmh * 60))

	est := &TravelEstimate{
		DistanceKm: math.Round(km*10) / 10,
		Minutes:    minutes,
		Mode:       mode,
		Label:      formatLeg(minutes, mode),
	}
	return est, minutes > band.ThresholdMin
}

func formatLeg(minutes int, mode activity.TravelMode) string {
	if minutes >= 60 {
		return fmt.Sprintf("%d hr %d min %s", minutes/60, minutes%60, mode)
	}
	return fmt.Sprintf("%d min %s", minutes, mode)
}

// sortClock pads single-digit hours so lexicographic comparison matches
// chronological order ("9:00" would otherwise sort after "10:00").
func sortClock(clock string) string {
	if norm, err := activity.NormalizeClock(clock); err == nil {
		return norm
	}
	return clock
}

// hasTimeCollision reports whether another activity in the group shares the
// same start time. Only start-time equality counts; overlap of durations is
// not modeled.
func hasTimeCollision(group []activity.Activity, i int) bool {
	t := sortClock(group[i].Time)
	for j := range group {
		if j != i && sortClock(group[j].Time) == t {
			return true
		}
	}
	return false
}
