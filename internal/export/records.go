package export

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
)

// recordAttrs holds the attributes of one Record element.
type recordAttrs struct {
	Type      string
	StartDate string
	EndDate   string
	Value     string
	Unit      string
}

// Scan streams every Record element once, feeding the raw type and
// normalized row to fn. Records without a type are discarded.
func (s *Source) Scan(ctx context.Context, fn aggregate.ScanFunc) error {
	return s.walk(ctx, func(rec recordAttrs) error {
		if rec.Type == "" {
			return nil
		}
		return fn(rec.Type, normalizeRow(rec.StartDate, rec.EndDate, RawValue(rec.Value)))
	}, nil)
}

// Workouts collects every Workout element in one streaming pass.
func (s *Source) Workouts(ctx context.Context) ([]aggregate.Workout, error) {
	var out []aggregate.Workout
	err := s.walk(ctx, nil, func(w aggregate.Workout) error {
		out = append(out, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk streams the record log once, invoking the callbacks for each Record
// and Workout element. Record and Workout subtrees are skipped after their
// attributes are read; other elements are descended into, so records nested
// under Correlation elements are still visited. The context is checked per
// element so the host can cancel a long pass.
func (s *Source) walk(ctx context.Context, onRecord func(recordAttrs) error, onWorkout func(aggregate.Workout) error) error {
	rc, err := s.factory.NewReader()
	if err != nil {
		return fmt.Errorf("open record log: %w", err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode record log: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "Record":
			if onRecord != nil {
				if err := onRecord(recordFrom(se)); err != nil {
					return err
				}
			}
			if err := dec.Skip(); err != nil {
				return fmt.Errorf("skip record body: %w", err)
			}
		case "Workout":
			if onWorkout != nil {
				if err := onWorkout(workoutFrom(se)); err != nil {
					return err
				}
			}
			if err := dec.Skip(); err != nil {
				return fmt.Errorf("skip workout body: %w", err)
			}
		}
	}
}

func recordFrom(se xml.StartElement) recordAttrs {
	return recordAttrs{
		Type:      attr(se, "type"),
		StartDate: attr(se, "startDate"),
		EndDate:   attr(se, "endDate"),
		Value:     attr(se, "value"),
		Unit:      attr(se, "unit"),
	}
}

func workoutFrom(se xml.StartElement) aggregate.Workout {
	w := aggregate.Workout{
		ActivityType: attr(se, "workoutActivityType"),
		DurationUnit: attr(se, "durationUnit"),
	}
	if raw := attr(se, "duration"); raw != "" {
		if num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			w.Duration = &num
		}
	}
	return w
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
