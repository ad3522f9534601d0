package export

import (
	"context"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
)

// tableRow is one structured-table entry before normalization.
type tableRow struct {
	start string
	end   string
	value Value
}

// Records returns the normalized structured table for cat. The tables for
// all categories are materialized in one indexing pass on first call.
// Categories absent from the export report ok=false so the engine can fall
// back to the scan path.
func (s *Source) Records(ctx context.Context, cat aggregate.Category) ([]aggregate.Row, bool, error) {
	if err := s.buildTables(ctx); err != nil {
		return nil, false, err
	}

	rows := s.tables[cat]
	if len(rows) == 0 {
		return nil, false, nil
	}

	out := make([]aggregate.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, normalizeRow(r.start, r.end, r.value))
	}
	return out, true, nil
}

func (s *Source) buildTables(ctx context.Context) error {
	if s.tablesBuilt {
		return s.tablesErr
	}
	s.tablesBuilt = true
	s.tables = make(map[aggregate.Category][]tableRow)

	s.tablesErr = s.walk(ctx, func(rec recordAttrs) error {
		cat, ok := aggregate.Classify(rec.Type)
		if !ok {
			return nil
		}
		value := RawValue(rec.Value)
		if rec.Unit != "" {
			value = WrappedValue(rec.Value, rec.Unit)
		}
		s.tables[cat] = append(s.tables[cat], tableRow{start: rec.StartDate, end: rec.EndDate, value: value})
		return nil
	}, nil)
	return s.tablesErr
}
