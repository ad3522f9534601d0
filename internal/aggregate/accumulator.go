package aggregate

import "strings"

// Sleep stage labels that count as actually asleep, as opposed to in-bed or
// awake states. Some export versions emit the bare value "1" for asleep.
var asleepValues = map[string]struct{}{
	"HKCategoryValueSleepAnalysisAsleep":            {},
	"HKCategoryValueSleepAnalysisAsleepCore":        {},
	"HKCategoryValueSleepAnalysisAsleepDeep":        {},
	"HKCategoryValueSleepAnalysisAsleepREM":         {},
	"HKCategoryValueSleepAnalysisAsleepUnspecified": {},
	"1": {},
}

func isAsleep(value string) bool {
	if _, ok := asleepValues[value]; ok {
		return true
	}
	return strings.Contains(strings.ToLower(value), "asleep")
}

// QuantityTotals accumulates a summable quantity into day and month buckets
// plus a running grand total.
type QuantityTotals struct {
	Total  float64
	Days   Buckets
	Months Buckets
}

func (q *QuantityTotals) add(row Row) {
	if row.Num == nil || *row.Num <= 0 || row.Start == nil {
		return
	}
	q.Total += *row.Num
	q.Days.Add(DayKey(*row.Start), *row.Num)
	q.Months.Add(MonthKey(*row.Start), *row.Num)
}

// MeanTotals accumulates samples toward a simple mean.
type MeanTotals struct {
	Sum   float64
	Count int
}

func (m *MeanTotals) add(row Row) {
	if row.Num == nil || *row.Num <= 0 {
		return
	}
	m.Sum += *row.Num
	m.Count++
}

// Mean returns the accumulated average, 0 when no samples were taken.
func (m MeanTotals) Mean() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

// SleepTotals accumulates asleep segment hours per month and tracks the
// distinct nights slept, keyed by segment start date.
type SleepTotals struct {
	Hours  float64
	Months Buckets
	Nights map[string]struct{}
}

func (s *SleepTotals) add(row Row) {
	if row.Start == nil || row.End == nil || !row.End.After(*row.Start) {
		return
	}
	if !isAsleep(row.Str) {
		return
	}
	hours := row.End.Sub(*row.Start).Hours()
	s.Hours += hours
	s.Months.Add(MonthKey(*row.Start), hours)
	s.Nights[DayKey(*row.Start)] = struct{}{}
}

// MindfulTotals accumulates mindful session minutes and counts sessions.
type MindfulTotals struct {
	Minutes  float64
	Sessions int
}

func (m *MindfulTotals) add(row Row) {
	if row.Start == nil || row.End == nil || !row.End.After(*row.Start) {
		return
	}
	m.Minutes += row.End.Sub(*row.Start).Minutes()
	m.Sessions++
}

// Aggregates holds the per-category accumulator state for one extraction.
// Each engine invocation owns its Aggregates exclusively.
type Aggregates struct {
	Steps   QuantityTotals
	Energy  QuantityTotals
	Heart   MeanTotals
	Resting MeanTotals
	Sleep   SleepTotals
	Mindful MindfulTotals
}

// NewAggregates returns an empty accumulator set.
func NewAggregates() *Aggregates {
	return &Aggregates{
		Steps:  QuantityTotals{Days: Buckets{}, Months: Buckets{}},
		Energy: QuantityTotals{Days: Buckets{}, Months: Buckets{}},
		Sleep:  SleepTotals{Months: Buckets{}, Nights: map[string]struct{}{}},
	}
}

// Add accumulates one normalized row under its category's predicate.
// Rows failing a predicate are dropped silently.
func (a *Aggregates) Add(cat Category, row Row) {
	switch cat {
	case CategorySteps:
		a.Steps.add(row)
	case CategoryActiveEnergy:
		a.Energy.add(row)
	case CategoryHeartRate:
		a.Heart.add(row)
	case CategoryRestingHeartRate:
		a.Resting.add(row)
	case CategorySleep:
		a.Sleep.add(row)
	case CategoryMindful:
		a.Mindful.add(row)
	}
}
