package aggregate

import (
	"context"
	"time"
)

// Row is a record normalized at the parsing boundary: timestamps resolved to
// UTC (nil when unparseable), the value coerced both numerically and as a
// string. Both extraction paths feed rows through the same accumulation.
type Row struct {
	Start *time.Time
	End   *time.Time
	Num   *float64
	Str   string
}

// Workout is a single workout entry from the export.
type Workout struct {
	ActivityType string
	Duration     *float64
	DurationUnit string
}

// ScanFunc receives the raw type identifier and normalized row for every
// record visited by a scan pass.
type ScanFunc func(rawType string, row Row) error

// Source provides record access for one export. Records returns the
// structured table for a category when the parser materialized it; Scan
// streams every record in a single pass; Workouts collects workout entries.
type Source interface {
	Records(ctx context.Context, cat Category) ([]Row, bool, error)
	Scan(ctx context.Context, fn ScanFunc) error
	Workouts(ctx context.Context) ([]Workout, error)
}
