// Package export parses health export record logs into the structured tables
// and raw scan passes the aggregation engine consumes.
package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
)

// ReaderFactory opens a fresh reader over the record log for each pass.
type ReaderFactory interface {
	NewReader() (io.ReadCloser, error)
}

// Source implements the engine's record source over one export file. Tables
// are materialized once on first use; scan and workout passes stream the log
// with a fresh reader each time. A Source belongs to a single summarization
// and is not safe for concurrent use.
type Source struct {
	factory ReaderFactory

	tables      map[aggregate.Category][]tableRow
	tablesBuilt bool
	tablesErr   error
}

// NewSource wraps a record log reader factory.
func NewSource(factory ReaderFactory) *Source {
	return &Source{factory: factory}
}

func normalizeRow(start, end string, value Value) aggregate.Row {
	row := aggregate.Row{
		Start: ParseTimestamp(start),
		End:   ParseTimestamp(end),
		Str:   value.Unwrap(),
	}
	if num, err := strconv.ParseFloat(strings.TrimSpace(row.Str), 64); err == nil {
		row.Num = &num
	}
	return row
}
