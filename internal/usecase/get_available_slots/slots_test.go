package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/ptr"
	"github.com/logisync/scheduling-service/pkg/types"
)

func TestGenerateWindowSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		interval int
		want     []Slot
	}{
		{
			name:     "two hour window with 60 minute slots",
			start:    "08:00",
			end:      "10:00",
			interval: 60,
			want: []Slot{
				{StartTime: "08:00", EndTime: "09:00"},
				{StartTime: "09:00", EndTime: "10:00"},
			},
		},
		{
			name:     "interval larger than window yields nothing",
			start:    "08:00",
			end:      "08:30",
			interval: 60,
			want:     []Slot{},
		},
		{
			name:     "trailing fragment is dropped",
			start:    "08:00",
			end:      "09:30",
			interval: 60,
			want: []Slot{
				{StartTime: "08:00", EndTime: "09:00"},
			},
		},
		{
			name:     "thirty minute slots",
			start:    "09:00",
			end:      "10:30",
			interval: 30,
			want: []Slot{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
				{StartTime: "10:00", EndTime: "10:30"},
			},
		},
		{
			name:     "zero interval yields nothing",
			start:    "08:00",
			end:      "18:00",
			interval: 0,
			want:     []Slot{},
		},
		{
			name:     "negative interval yields nothing",
			start:    "08:00",
			end:      "18:00",
			interval: -15,
			want:     []Slot{},
		},
		{
			name:     "start equal to end yields nothing",
			start:    "08:00",
			end:      "08:00",
			interval: 30,
			want:     []Slot{},
		},
		{
			name:     "start after end yields nothing",
			start:    "18:00",
			end:      "08:00",
			interval: 30,
			want:     []Slot{},
		},
		{
			name:     "malformed start yields nothing",
			start:    "8h00",
			end:      "10:00",
			interval: 30,
			want:     []Slot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateWindowSlots(tt.start, tt.end, tt.interval)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Adjacent slots must tile the window: each slot ends where the next begins,
// the first starts at the window start and the last never runs past the end.
func TestGenerateWindowSlots_Tiling(t *testing.T) {
	windows := []struct {
		start    types.TimeString
		end      types.TimeString
		interval int
	}{
		{"08:00", "18:00", 30},
		{"08:00", "18:00", 45},
		{"06:15", "22:00", 25},
		{"00:00", "23:59", 60},
		{"07:00", "19:30", 90},
	}

	for _, w := range windows {
		slots := generateWindowSlots(w.start, w.end, w.interval)
		require.NotEmpty(t, slots)

		assert.Equal(t, w.start, slots[0].StartTime)

		for i := 0; i < len(slots)-1; i++ {
			assert.Equal(t, slots[i].EndTime, slots[i+1].StartTime,
				"slot %d must end where slot %d begins", i, i+1)
		}

		last := slots[len(slots)-1]
		assert.False(t, last.EndTime.IsAfter(w.end), "last slot must not run past the window end")

		for _, slot := range slots {
			startMin, err := slot.StartTime.Minutes()
			require.NoError(t, err)
			endMin, err := slot.EndTime.Minutes()
			require.NoError(t, err)
			assert.Equal(t, w.interval, endMin-startMin)
		}
	}
}

func TestHasFullDayBlackout(t *testing.T) {
	fullDay := &domain.Blackout{ID: 1}
	fullDayLoadOnly := &domain.Blackout{ID: 2, Type: ptr.Ptr(domain.TypeLoad)}
	partial := &domain.Blackout{
		ID:        3,
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("11:00")),
	}

	tests := []struct {
		name        string
		blackouts   []*domain.Blackout
		bookingType domain.BookingType
		want        bool
	}{
		{
			name:        "no blackouts",
			blackouts:   nil,
			bookingType: domain.TypeLoad,
			want:        false,
		},
		{
			name:        "untyped full-day blocks both types",
			blackouts:   []*domain.Blackout{fullDay},
			bookingType: domain.TypeUnload,
			want:        true,
		},
		{
			name:        "typed full-day blocks matching type",
			blackouts:   []*domain.Blackout{fullDayLoadOnly},
			bookingType: domain.TypeLoad,
			want:        true,
		},
		{
			name:        "typed full-day ignores other type",
			blackouts:   []*domain.Blackout{fullDayLoadOnly},
			bookingType: domain.TypeUnload,
			want:        false,
		},
		{
			name:        "partial blackout is not full-day",
			blackouts:   []*domain.Blackout{partial},
			bookingType: domain.TypeLoad,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasFullDayBlackout(tt.blackouts, tt.bookingType))
		})
	}
}

func TestMarkOccupiedSlots(t *testing.T) {
	slots := []Slot{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "10:00", EndTime: "11:00"},
	}

	bookings := []*domain.Booking{
		{ID: 1, StartTime: "08:00", EndTime: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
	}

	blackouts := []*domain.Blackout{
		{
			ID:        1,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
			Type:      ptr.Ptr(domain.TypeUnload),
		},
	}

	markOccupiedSlots(slots, bookings, blackouts, domain.TypeLoad)

	assert.True(t, slots[0].Booked, "active booking occupies its slot")
	assert.False(t, slots[1].Booked, "cancelled booking frees its slot")
	assert.False(t, slots[2].Booked, "blackout for the other type does not apply")

	markOccupiedSlots(slots, bookings, blackouts, domain.TypeUnload)
	assert.True(t, slots[2].Booked, "typed partial blackout blocks its slot")
}
