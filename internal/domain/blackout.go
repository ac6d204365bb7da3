package domain

import (
	"time"

	"github.com/logisync/scheduling-service/pkg/types"
)

// Blackout is an admin-declared unavailability record. Without a time range
// it blocks the whole day; without a type it applies to both booking types.
type Blackout struct {
	ID        int64
	Date      time.Time
	StartTime *types.TimeString // nil = whole day
	EndTime   *types.TimeString
	Type      *BookingType // nil = both types
	Reason    *string
	CreatedAt time.Time
}

// IsFullDay reports whether the blackout blocks the entire day.
func (b *Blackout) IsFullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// AppliesTo reports whether the blackout affects the given booking type.
func (b *Blackout) AppliesTo(t BookingType) bool {
	return b.Type == nil || *b.Type == t
}

// CoversSlot reports whether a partial blackout blocks the slot with the
// given range. Full-day blackouts are handled before slot generation and
// never reach this check.
func (b *Blackout) CoversSlot(start, end types.TimeString) bool {
	if b.IsFullDay() {
		return false
	}
	return b.StartTime.Equal(start) && b.EndTime.Equal(end)
}
