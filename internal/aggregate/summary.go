package aggregate

import (
	"fmt"
	"math"
)

// Approximate walking distance per step, in kilometers.
const kmPerStep = 0.0008

// Summary is the final wrapped report for one export.
type Summary struct {
	Steps        StepsSummary        `json:"steps"`
	Workouts     WorkoutsSummary     `json:"workouts"`
	Sleep        SleepSummary        `json:"sleep"`
	HeartRate    HeartRateSummary    `json:"heartRate"`
	ActiveEnergy ActiveEnergySummary `json:"activeEnergy"`
	Mindful      MindfulSummary      `json:"mindfulMinutes"`
	Insights     InsightsSummary     `json:"insights"`
}

// StepsSummary reports step totals and the monthly breakdown.
type StepsSummary struct {
	Total       int          `json:"total"`
	Average     int          `json:"average"`
	BestMonth   string       `json:"bestMonth"`
	MonthlyData []MonthValue `json:"monthlyData"`
}

// MonthValue is one month's aggregated value.
type MonthValue struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// WorkoutsSummary reports workout counts by type and total minutes.
type WorkoutsSummary struct {
	Total        int            `json:"total"`
	Types        map[string]int `json:"types"`
	TotalMinutes int            `json:"totalMinutes"`
}

// SleepSummary reports asleep hours and the best sleep month.
type SleepSummary struct {
	AverageHours float64 `json:"averageHours"`
	TotalHours   float64 `json:"totalHours"`
	BestMonth    string  `json:"bestMonth"`
}

// HeartRateSummary reports mean heart rates.
type HeartRateSummary struct {
	Average int `json:"average"`
	Resting int `json:"resting"`
}

// ActiveEnergySummary reports burned energy totals.
type ActiveEnergySummary struct {
	Total   float64 `json:"total"`
	Average int     `json:"average"`
}

// MindfulSummary reports mindful minutes and session count.
type MindfulSummary struct {
	Total    float64 `json:"total"`
	Sessions int     `json:"sessions"`
}

// InsightsSummary carries the derived headline strings.
type InsightsSummary struct {
	TopAchievement string `json:"topAchievement"`
	FunFact        string `json:"funFact"`
	YearComparison string `json:"yearComparison"`
}

// Synthesize folds accumulated state and workout totals into the summary.
// Averages divide by distinct active days, never by calendar span.
func Synthesize(agg *Aggregates, workouts WorkoutTotals) *Summary {
	stepsTotal := roundInt(agg.Steps.Total)
	stepsBest := agg.Steps.Months.Best()

	monthly := make([]MonthValue, 0, len(agg.Steps.Months))
	for _, month := range agg.Steps.Months.SortedKeys() {
		monthly = append(monthly, MonthValue{Month: month, Value: roundInt(agg.Steps.Months[month])})
	}

	sleepAvg := 0.0
	if agg.Sleep.Hours > 0 {
		sleepAvg = round2(agg.Sleep.Hours / float64(max(1, len(agg.Sleep.Nights))))
	}

	types := workouts.Types
	if types == nil {
		types = map[string]int{}
	}

	return &Summary{
		Steps: StepsSummary{
			Total:       stepsTotal,
			Average:     roundInt(agg.Steps.Total / float64(max(1, len(agg.Steps.Days)))),
			BestMonth:   stepsBest,
			MonthlyData: monthly,
		},
		Workouts: WorkoutsSummary{
			Total:        workouts.Count,
			Types:        types,
			TotalMinutes: roundInt(workouts.Minutes),
		},
		Sleep: SleepSummary{
			AverageHours: sleepAvg,
			TotalHours:   round2(agg.Sleep.Hours),
			BestMonth:    agg.Sleep.Months.Best(),
		},
		HeartRate: HeartRateSummary{
			Average: roundInt(agg.Heart.Mean()),
			Resting: roundInt(agg.Resting.Mean()),
		},
		ActiveEnergy: ActiveEnergySummary{
			Total:   round2(agg.Energy.Total),
			Average: roundInt(agg.Energy.Total / float64(max(1, len(agg.Energy.Days)))),
		},
		Mindful: MindfulSummary{
			Total:    round2(agg.Mindful.Minutes),
			Sessions: agg.Mindful.Sessions,
		},
		Insights: InsightsSummary{
			TopAchievement: topAchievement(stepsBest),
			FunFact:        funFact(stepsTotal),
			YearComparison: yearComparison(workouts.Count),
		},
	}
}

func topAchievement(bestStepsMonth string) string {
	if bestStepsMonth == "" {
		return ""
	}
	return fmt.Sprintf("%s was your steps peak!", bestStepsMonth)
}

func funFact(stepsTotal int) string {
	km := round1(float64(stepsTotal) * kmPerStep)
	return fmt.Sprintf("You walked ~%.1f km - roughly a city-to-city trek!", km)
}

func yearComparison(workoutCount int) string {
	plural := "s"
	if workoutCount == 1 {
		plural = ""
	}
	return fmt.Sprintf("You completed %d workout%s!", workoutCount, plural)
}

// roundInt rounds half to even.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
