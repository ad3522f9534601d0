// Package events publishes summary lifecycle notifications.
package events

import (
	"context"
	"time"
)

// ExportSummarized is emitted after an export has been summarized.
type ExportSummarized struct {
	ExportID     string    `json:"export_id"`
	ReceivedAt   time.Time `json:"received_at"`
	StepsTotal   int       `json:"steps_total"`
	WorkoutCount int       `json:"workout_count"`
	SleepHours   float64   `json:"sleep_hours"`
	ScanFallback bool      `json:"scan_fallback"`
}

// Announcer defines the summary notification contract.
type Announcer interface {
	Announce(ctx context.Context, evt ExportSummarized) error
}

// NoopAnnouncer is a no-op implementation.
type NoopAnnouncer struct{}

// Announce performs no action.
func (NoopAnnouncer) Announce(context.Context, ExportSummarized) error { return nil }
