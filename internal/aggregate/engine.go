// Package aggregate implements the health export aggregation engine:
// record classification, per-period accumulation, dual-path extraction, and
// summary synthesis.
package aggregate

import (
	"context"
	"fmt"
)

// Extract aggregates every metric category from src. The structured table
// path runs first for each category; when any category yields nothing, a
// single raw scan over the whole record stream fills the gaps. Categories
// that yielded from the tables keep their result even where the scan
// disagrees. The returned bool reports whether the scan pass ran.
func Extract(ctx context.Context, src Source) (*Aggregates, bool, error) {
	agg := NewAggregates()
	for _, cat := range Categories() {
		rows, ok, err := src.Records(ctx, cat)
		if err != nil || !ok {
			// Table absent or unreadable: leave the category to the scan.
			continue
		}
		for _, row := range rows {
			agg.Add(cat, row)
		}
	}

	needSteps := agg.Steps.Total == 0
	needEnergy := agg.Energy.Total == 0
	needHeart := agg.Heart.Mean() == 0 && agg.Resting.Mean() == 0
	needSleep := agg.Sleep.Hours == 0
	needMindful := agg.Mindful.Minutes == 0

	if !needSteps && !needEnergy && !needHeart && !needSleep && !needMindful {
		return agg, false, nil
	}

	scanned := NewAggregates()
	err := src.Scan(ctx, func(rawType string, row Row) error {
		if cat, ok := Classify(rawType); ok {
			scanned.Add(cat, row)
		}
		return nil
	})
	if err != nil {
		return nil, true, fmt.Errorf("scan records: %w", err)
	}

	if needSteps {
		agg.Steps = scanned.Steps
	}
	if needEnergy {
		agg.Energy = scanned.Energy
	}
	if needHeart {
		// Heart-rate need is evaluated jointly, so both move together.
		agg.Heart = scanned.Heart
		agg.Resting = scanned.Resting
	}
	if needSleep {
		agg.Sleep = scanned.Sleep
	}
	if needMindful {
		agg.Mindful = scanned.Mindful
	}

	return agg, true, nil
}
