package aggregate

import "strings"

const activityTypePrefix = "HKWorkoutActivityType"

// WorkoutTotals tallies workout entries by display activity type.
type WorkoutTotals struct {
	Count   int
	Types   map[string]int
	Minutes float64
}

// TabulateWorkouts counts every workout and sums duration in minutes.
// Durations recorded in hours are converted; entries without a numeric
// duration still count but contribute no minutes.
func TabulateWorkouts(workouts []Workout) WorkoutTotals {
	totals := WorkoutTotals{Types: make(map[string]int)}
	for _, w := range workouts {
		name := w.ActivityType
		if name == "" {
			name = "Other"
		}
		name = strings.TrimPrefix(name, activityTypePrefix)

		totals.Count++
		totals.Types[name]++

		if w.Duration == nil {
			continue
		}
		minutes := *w.Duration
		switch strings.ToLower(w.DurationUnit) {
		case "hr", "hour", "hours":
			minutes *= 60
		}
		totals.Minutes += minutes
	}
	return totals
}
