// Package domain defines the business logic for the wrapped service.
package domain

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rusuraluca/apple-health-wrapped/internal/aggregate"
	"github.com/rusuraluca/apple-health-wrapped/internal/events"
	"github.com/rusuraluca/apple-health-wrapped/internal/observability"
)

// Failure stages reported to observability.
const (
	stageArchive = "archive"
	stageScan    = "scan"
)

// ExportSource is the per-archive record access the engine consumes.
type ExportSource interface {
	aggregate.Source
	Path() string
	Close() error
}

// Opener resolves an uploaded archive path into a record source.
type Opener interface {
	Open(archivePath string) (ExportSource, error)
}

// Result carries one computed summary plus processing metadata.
type Result struct {
	ExportID   string
	ReceivedAt time.Time
	Summary    *aggregate.Summary
	ScanUsed   bool
	Elapsed    time.Duration
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithAnnouncer sets the summary event publisher.
func WithAnnouncer(announcer events.Announcer) Option {
	return func(s *Service) {
		s.announcer = announcer
	}
}

// WithLogger overrides the logger used to report progress.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service orchestrates export summarization workflows.
type Service struct {
	opener    Opener
	announcer events.Announcer
	logger    *log.Logger
}

// NewService constructs a Service over the given archive opener.
func NewService(opener Opener, opts ...Option) *Service {
	s := &Service{
		opener:    opener,
		announcer: events.NoopAnnouncer{},
		logger:    log.New(log.Writer(), "[wrapped] ", log.LstdFlags|log.Lshortfile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize opens the archive at archivePath, aggregates every metric
// category, tabulates workouts, and synthesizes the wrapped summary.
func (s *Service) Summarize(ctx context.Context, archivePath string) (*Result, error) {
	started := time.Now()
	exportID := uuid.NewString()

	src, err := s.opener.Open(archivePath)
	if err != nil {
		observability.RecordSummaryFailure(stageArchive)
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer src.Close()

	agg, scanned, err := aggregate.Extract(ctx, src)
	if err != nil {
		observability.RecordSummaryFailure(stageScan)
		return nil, fmt.Errorf("aggregate records: %w", err)
	}
	if scanned {
		observability.RecordScanFallback()
	}

	workouts, err := src.Workouts(ctx)
	if err != nil {
		observability.RecordSummaryFailure(stageScan)
		return nil, fmt.Errorf("tabulate workouts: %w", err)
	}

	result := &Result{
		ExportID:   exportID,
		ReceivedAt: started.UTC(),
		Summary:    aggregate.Synthesize(agg, aggregate.TabulateWorkouts(workouts)),
		ScanUsed:   scanned,
		Elapsed:    time.Since(started),
	}

	s.announce(ctx, result)
	observability.RecordSummaryProcessed(result.Elapsed)
	s.logger.Printf("summarized export %s from %s in %s (scan_fallback=%t)", exportID, src.Path(), result.Elapsed.Round(time.Millisecond), scanned)

	return result, nil
}

// announce publishes the summary event. Publish failures are logged and
// counted, never surfaced to the caller.
func (s *Service) announce(ctx context.Context, result *Result) {
	evt := events.ExportSummarized{
		ExportID:     result.ExportID,
		ReceivedAt:   result.ReceivedAt,
		StepsTotal:   result.Summary.Steps.Total,
		WorkoutCount: result.Summary.Workouts.Total,
		SleepHours:   result.Summary.Sleep.TotalHours,
		ScanFallback: result.ScanUsed,
	}
	if err := s.announcer.Announce(ctx, evt); err != nil {
		observability.RecordAnnounceFailure()
		s.logger.Printf("announce export %s failed: %v", result.ExportID, err)
	}
}
