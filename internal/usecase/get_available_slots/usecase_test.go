package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisync/scheduling-service/internal/domain"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	"github.com/logisync/scheduling-service/pkg/ptr"
	"github.com/logisync/scheduling-service/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubScheduleRepo struct {
	window *domain.WorkingWindow
	err    error
}

func (s *stubScheduleRepo) Get(_ context.Context) (*domain.WorkingWindow, error) {
	return s.window, s.err
}

type stubBlackoutRepo struct {
	blackouts []*domain.Blackout
	err       error
}

func (s *stubBlackoutRepo) ListByDate(_ context.Context, _ time.Time, _ *domain.BookingType) ([]*domain.Blackout, error) {
	return s.blackouts, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func defaultWindow() *domain.WorkingWindow {
	return &domain.WorkingWindow{
		StartTime:             "08:00",
		EndTime:               "10:00",
		LoadIntervalMinutes:   60,
		UnloadIntervalMinutes: 30,
	}
}

func newTestUseCase(bookings *stubBookingRepo, schedule *stubScheduleRepo, blackouts *stubBlackoutRepo) *UseCase {
	return NewUseCase(bookings, schedule, blackouts, nopLogger{})
}

func TestExecute_FreeWindow(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{StartTime: "08:00", EndTime: "09:00", Booked: false},
		{StartTime: "09:00", EndTime: "10:00", Booked: false},
	}, resp.Slots)
}

func TestExecute_IntervalLargerThanWindow(t *testing.T) {
	window := &domain.WorkingWindow{
		StartTime:           "08:00",
		EndTime:             "08:30",
		LoadIntervalMinutes: 60,
	}
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: window}, &stubBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedSlotIsFlagged(t *testing.T) {
	bookings := &stubBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "08:00", EndTime: "09:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(bookings, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{StartTime: "08:00", EndTime: "09:00", Booked: true},
		{StartTime: "09:00", EndTime: "10:00", Booked: false},
	}, resp.Slots)
}

func TestExecute_FullDayBlackoutShortCircuits(t *testing.T) {
	// The window read must never happen: a full-day blackout wins even when
	// the window is missing or the store would fail.
	schedule := &stubScheduleRepo{err: errors.New("window store must not be read")}
	blackouts := &stubBlackoutRepo{blackouts: []*domain.Blackout{{ID: 7}}}

	uc := newTestUseCase(&stubBookingRepo{err: errors.New("booking store must not be read")}, schedule, blackouts)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeUnload})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PartialBlackoutFlagsSlot(t *testing.T) {
	blackouts := &stubBlackoutRepo{
		blackouts: []*domain.Blackout{
			{
				ID:        3,
				StartTime: ptr.Ptr(types.TimeString("09:00")),
				EndTime:   ptr.Ptr(types.TimeString("10:00")),
			},
		},
	}
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: defaultWindow()}, blackouts)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{StartTime: "08:00", EndTime: "09:00", Booked: false},
		{StartTime: "09:00", EndTime: "10:00", Booked: true},
	}, resp.Slots)
}

func TestExecute_UnloadUsesItsOwnInterval(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeUnload})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 4)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	schedule := &stubScheduleRepo{err: scheduleRepo.ErrWindowNotConfigured}
	uc := newTestUseCase(&stubBookingRepo{}, schedule, &stubBlackoutRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing date", &Request{Type: domain.TypeLoad}},
		{"unknown type", &Request{Date: testDate(), Type: "transbordo"}},
		{"empty type", &Request{Date: testDate()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("connection refused")

	t.Run("blackout store", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{err: storeErr})
		_, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking store", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{err: storeErr}, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})
		_, err := uc.Execute(context.Background(), &Request{Date: testDate(), Type: domain.TypeLoad})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

// The computation is a pure read: identical inputs against unchanged stores
// must yield identical output.
func TestExecute_Idempotent(t *testing.T) {
	bookings := &stubBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(bookings, &stubScheduleRepo{window: defaultWindow()}, &stubBlackoutRepo{})
	req := &Request{Date: testDate(), Type: domain.TypeLoad}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
