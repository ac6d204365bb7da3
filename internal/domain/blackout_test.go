package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logisync/scheduling-service/pkg/ptr"
	"github.com/logisync/scheduling-service/pkg/types"
)

func TestBlackout_IsFullDay(t *testing.T) {
	assert.True(t, (&Blackout{}).IsFullDay())
	assert.True(t, (&Blackout{StartTime: ptr.Ptr(types.TimeString("10:00"))}).IsFullDay(),
		"missing end still counts as full day")

	partial := &Blackout{
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("11:00")),
	}
	assert.False(t, partial.IsFullDay())
}

func TestBlackout_AppliesTo(t *testing.T) {
	untyped := &Blackout{}
	assert.True(t, untyped.AppliesTo(TypeLoad))
	assert.True(t, untyped.AppliesTo(TypeUnload))

	loadOnly := &Blackout{Type: ptr.Ptr(TypeLoad)}
	assert.True(t, loadOnly.AppliesTo(TypeLoad))
	assert.False(t, loadOnly.AppliesTo(TypeUnload))
}

func TestBlackout_CoversSlot(t *testing.T) {
	partial := &Blackout{
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("11:00")),
	}

	assert.True(t, partial.CoversSlot("10:00", "11:00"))
	assert.False(t, partial.CoversSlot("10:00", "10:30"))
	assert.False(t, partial.CoversSlot("11:00", "12:00"))

	fullDay := &Blackout{}
	assert.False(t, fullDay.CoversSlot("10:00", "11:00"),
		"full-day blackouts are resolved before slot generation")
}

func TestWorkingWindow_IntervalFor(t *testing.T) {
	window := &WorkingWindow{LoadIntervalMinutes: 60, UnloadIntervalMinutes: 30}

	assert.Equal(t, 60, window.IntervalFor(TypeLoad))
	assert.Equal(t, 30, window.IntervalFor(TypeUnload))
}
