package testutil

import (
	"time"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
)

// Epoch is the fixed start time test clocks use by default.
var Epoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock at Epoch that can be controlled in tests.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(Epoch)
}

// Days returns n 24-hour days.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
