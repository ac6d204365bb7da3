package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/ptr"
	"github.com/logisync/scheduling-service/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			UserID:    42,
			Type:      domain.TypeLoad,
			Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "08:00",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"negative user id", func(r *Request) { r.UserID = -1 }},
		{"unknown type", func(r *Request) { r.Type = "transbordo" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "8 o'clock" }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateSlotOnGrid(t *testing.T) {
	window := &domain.WorkingWindow{
		StartTime:             "08:00",
		EndTime:               "18:00",
		LoadIntervalMinutes:   60,
		UnloadIntervalMinutes: 45,
	}

	t.Run("start on the grid returns slot end", func(t *testing.T) {
		end, err := validateSlotOnGrid(window, domain.TypeLoad, "10:00")
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("11:00"), end)
	})

	t.Run("unload type uses its own interval", func(t *testing.T) {
		end, err := validateSlotOnGrid(window, domain.TypeUnload, "08:45")
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("09:30"), end)
	})

	t.Run("start off the grid is rejected", func(t *testing.T) {
		_, err := validateSlotOnGrid(window, domain.TypeLoad, "10:30")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("start before the window is rejected", func(t *testing.T) {
		_, err := validateSlotOnGrid(window, domain.TypeLoad, "07:00")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("start at the window end is rejected", func(t *testing.T) {
		_, err := validateSlotOnGrid(window, domain.TypeLoad, "18:00")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("slot overflowing the window end is rejected", func(t *testing.T) {
		shortWindow := &domain.WorkingWindow{
			StartTime:           "08:00",
			EndTime:             "09:30",
			LoadIntervalMinutes: 60,
		}
		_, err := validateSlotOnGrid(shortWindow, domain.TypeLoad, "09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("non-positive interval is an internal error", func(t *testing.T) {
		broken := &domain.WorkingWindow{StartTime: "08:00", EndTime: "18:00"}
		_, err := validateSlotOnGrid(broken, domain.TypeLoad, "08:00")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), true},
		{"today is not past even late in the day", time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateInPast(tt.date, now))
		})
	}
}
