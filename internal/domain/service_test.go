package domain

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
	"github.com/rusuraluca/apple-health-wrapped/internal/events"
)

func TestSummarizeSuccess(t *testing.T) {
	src := &stubSource{
		rows: map[aggregate.Category][]aggregate.Row{
			aggregate.CategorySteps:            {quantity(t, "2024-03-01 08:00:00 +0000", 4000)},
			aggregate.CategoryActiveEnergy:     {quantity(t, "2024-03-01 08:00:00 +0000", 250.5)},
			aggregate.CategoryHeartRate:        {quantity(t, "2024-03-01 08:00:00 +0000", 72)},
			aggregate.CategoryRestingHeartRate: {quantity(t, "2024-03-01 08:00:00 +0000", 58)},
			aggregate.CategorySleep:            {segment(t, "2024-03-01 23:00:00 +0000", "2024-03-02 06:30:00 +0000", "HKCategoryValueSleepAnalysisAsleepCore")},
			aggregate.CategoryMindful:          {segment(t, "2024-03-01 07:00:00 +0000", "2024-03-01 07:10:00 +0000", "")},
		},
		workouts: []aggregate.Workout{
			{ActivityType: "HKWorkoutActivityTypeRunning", Duration: floatPtr(30), DurationUnit: "min"},
		},
	}
	announcer := &stubAnnouncer{}

	service := NewService(&stubOpener{src: src}, WithAnnouncer(announcer), WithLogger(log.New(testWriter{t}, "", 0)))

	result, err := service.Summarize(context.Background(), "export.zip")
	require.NoError(t, err)

	require.NotEmpty(t, result.ExportID)
	require.Equal(t, time.UTC, result.ReceivedAt.Location())
	require.False(t, result.ScanUsed)

	require.Equal(t, 4000, result.Summary.Steps.Total)
	require.Equal(t, 72, result.Summary.HeartRate.Average)
	require.Equal(t, 58, result.Summary.HeartRate.Resting)
	require.Equal(t, 7.5, result.Summary.Sleep.TotalHours)
	require.Equal(t, 10.0, result.Summary.Mindful.Total)
	require.Equal(t, 1, result.Summary.Workouts.Total)
	require.Equal(t, 30, result.Summary.Workouts.TotalMinutes)

	require.True(t, src.closed)

	require.Len(t, announcer.announced, 1)
	evt := announcer.announced[0]
	require.Equal(t, result.ExportID, evt.ExportID)
	require.Equal(t, 4000, evt.StepsTotal)
	require.Equal(t, 1, evt.WorkoutCount)
	require.Equal(t, 7.5, evt.SleepHours)
	require.False(t, evt.ScanFallback)
}

func TestSummarizeReportsScanFallback(t *testing.T) {
	src := &stubSource{
		rows: map[aggregate.Category][]aggregate.Row{
			aggregate.CategorySteps: {quantity(t, "2024-03-01 08:00:00 +0000", 4000)},
		},
	}
	announcer := &stubAnnouncer{}

	service := NewService(&stubOpener{src: src}, WithAnnouncer(announcer), WithLogger(log.New(testWriter{t}, "", 0)))

	result, err := service.Summarize(context.Background(), "export.zip")
	require.NoError(t, err)
	require.True(t, result.ScanUsed)

	require.Len(t, announcer.announced, 1)
	require.True(t, announcer.announced[0].ScanFallback)
}

func TestSummarizeOpenFailure(t *testing.T) {
	openErr := errors.New("bad archive")
	service := NewService(&stubOpener{err: openErr}, WithLogger(log.New(testWriter{t}, "", 0)))

	_, err := service.Summarize(context.Background(), "export.zip")
	require.ErrorIs(t, err, openErr)
	require.ErrorContains(t, err, "open export")
}

func TestSummarizeAggregateFailure(t *testing.T) {
	scanErr := errors.New("truncated record log")
	src := &stubSource{scanErr: scanErr}

	service := NewService(&stubOpener{src: src}, WithLogger(log.New(testWriter{t}, "", 0)))

	_, err := service.Summarize(context.Background(), "export.zip")
	require.ErrorIs(t, err, scanErr)
	require.ErrorContains(t, err, "aggregate records")
	require.True(t, src.closed)
}

func TestSummarizeWorkoutsFailure(t *testing.T) {
	workoutsErr := errors.New("truncated record log")
	src := &stubSource{
		rows: map[aggregate.Category][]aggregate.Row{
			aggregate.CategorySteps: {quantity(t, "2024-03-01 08:00:00 +0000", 4000)},
		},
		workoutsErr: workoutsErr,
	}

	service := NewService(&stubOpener{src: src}, WithLogger(log.New(testWriter{t}, "", 0)))

	_, err := service.Summarize(context.Background(), "export.zip")
	require.ErrorIs(t, err, workoutsErr)
	require.ErrorContains(t, err, "tabulate workouts")
}

func TestSummarizeAnnounceFailureIsNotFatal(t *testing.T) {
	src := &stubSource{
		rows: map[aggregate.Category][]aggregate.Row{
			aggregate.CategorySteps: {quantity(t, "2024-03-01 08:00:00 +0000", 4000)},
		},
	}
	announcer := &stubAnnouncer{err: errors.New("brokers unreachable")}

	service := NewService(&stubOpener{src: src}, WithAnnouncer(announcer), WithLogger(log.New(testWriter{t}, "", 0)))

	result, err := service.Summarize(context.Background(), "export.zip")
	require.NoError(t, err)
	require.NotNil(t, result.Summary)
	require.Len(t, announcer.announced, 1)
}

func quantity(t *testing.T, start string, value float64) aggregate.Row {
	t.Helper()

	ts, err := time.Parse("2006-01-02 15:04:05 -0700", start)
	require.NoError(t, err)
	ts = ts.UTC()
	return aggregate.Row{Start: &ts, Num: &value}
}

func segment(t *testing.T, start, end, label string) aggregate.Row {
	t.Helper()

	s, err := time.Parse("2006-01-02 15:04:05 -0700", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02 15:04:05 -0700", end)
	require.NoError(t, err)
	s, e = s.UTC(), e.UTC()
	return aggregate.Row{Start: &s, End: &e, Str: label}
}

func floatPtr(v float64) *float64 { return &v }

type stubSource struct {
	rows        map[aggregate.Category][]aggregate.Row
	scanErr     error
	workouts    []aggregate.Workout
	workoutsErr error
	closed      bool
}

func (s *stubSource) Records(_ context.Context, cat aggregate.Category) ([]aggregate.Row, bool, error) {
	rows := s.rows[cat]
	return rows, len(rows) > 0, nil
}

func (s *stubSource) Scan(_ context.Context, _ aggregate.ScanFunc) error {
	return s.scanErr
}

func (s *stubSource) Workouts(_ context.Context) ([]aggregate.Workout, error) {
	if s.workoutsErr != nil {
		return nil, s.workoutsErr
	}
	return s.workouts, nil
}

func (s *stubSource) Path() string { return "apple_health_export/export.xml" }

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

type stubOpener struct {
	src *stubSource
	err error
}

func (o *stubOpener) Open(string) (ExportSource, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.src, nil
}

type stubAnnouncer struct {
	announced []events.ExportSummarized
	err       error
}

func (a *stubAnnouncer) Announce(_ context.Context, evt events.ExportSummarized) error {
	a.announced = append(a.announced, evt)
	return a.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
