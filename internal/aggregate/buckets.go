package aggregate

import (
	"math"
	"sort"
	"time"
)

// Buckets accumulates values keyed by UTC calendar day or month.
type Buckets map[string]float64

// Add folds v into the bucket for key, creating it on first use.
func (b Buckets) Add(key string, v float64) {
	b[key] += v
}

// SortedKeys returns bucket keys in ascending order.
func (b Buckets) SortedKeys() []string {
	keys := make([]string, 0, len(b))
	for key := range b {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Best returns the key with the largest accumulated value. Ties resolve to
// the earliest key; an empty bucket set yields "".
func (b Buckets) Best() string {
	best := ""
	bestVal := math.Inf(-1)
	for _, key := range b.SortedKeys() {
		if b[key] > bestVal {
			best = key
			bestVal = b[key]
		}
	}
	return best
}

// DayKey formats t as a UTC calendar-day bucket key.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// MonthKey formats t as a UTC calendar-month bucket key.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
