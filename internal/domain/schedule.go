package domain

import (
	"time"

	"github.com/logisync/scheduling-service/pkg/types"
)

// WorkingWindow is the single active gate schedule: the daily working hours
// and the slot length for each booking type. The system keeps exactly one
// window at a time, swappable by an administrator; the engine reads it once
// per request and never holds it as ambient state.
type WorkingWindow struct {
	ID                    int64
	StartTime             types.TimeString
	EndTime               types.TimeString
	LoadIntervalMinutes   int
	UnloadIntervalMinutes int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IntervalFor returns the slot length in minutes for the given booking type.
func (w *WorkingWindow) IntervalFor(t BookingType) int {
	if t == TypeUnload {
		return w.UnloadIntervalMinutes
	}
	return w.LoadIntervalMinutes
}
