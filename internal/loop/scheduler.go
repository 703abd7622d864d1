package loop

import (
	"context"
	"time"
)

// FrameScheduler blocks until the host's next frame and returns its timestamp.
type FrameScheduler interface {
	Next(ctx context.Context) (time.Time, error)
}

// TickerScheduler paces frames at a fixed interval.
type TickerScheduler struct {
	interval time.Duration
	last     time.Time
}

// NewTickerScheduler creates a scheduler that yields one frame per interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

// Next sleeps out the rest of the current frame. The first call returns immediately.
func (t *TickerScheduler) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if !t.last.IsZero() {
		if wait := t.interval - time.Since(t.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return time.Time{}, ctx.Err()
			case <-timer.C:
			}
		}
	}
	t.last = time.Now()
	return t.last, nil
}
