package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisync/scheduling-service/internal/domain"
	bookingRepo "github.com/logisync/scheduling-service/internal/infra/storage/booking"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	"github.com/logisync/scheduling-service/pkg/ptr"
	"github.com/logisync/scheduling-service/pkg/types"
)

type stubBookingRepo struct {
	bookings  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, s.listErr
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
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

// stubTxManager runs the callback directly; serialization behavior is covered
// by the database-level tests of the transaction managers.
type stubTxManager struct {
	calls int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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
		EndTime:               "18:00",
		LoadIntervalMinutes:   60,
		UnloadIntervalMinutes: 30,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:       42,
		Type:         domain.TypeLoad,
		Date:         testDate(),
		StartTime:    "10:00",
		VehiclePlate: ptr.Ptr("ABC1D23"),
		ProductName:  ptr.Ptr("fertilizante"),
	}
}

type testEnv struct {
	uc        *UseCase
	bookings  *stubBookingRepo
	schedule  *stubScheduleRepo
	blackouts *stubBlackoutRepo
	txManager *stubTxManager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bookings:  &stubBookingRepo{},
		schedule:  &stubScheduleRepo{window: defaultWindow()},
		blackouts: &stubBlackoutRepo{},
		txManager: &stubTxManager{},
	}
	env.uc = NewUseCase(env.bookings, env.schedule, env.blackouts, env.txManager, nopLogger{})
	env.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)}
	return env
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, domain.TypeLoad, resp.Type)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, env.txManager.calls)

	require.NotNil(t, env.bookings.created)
	assert.Equal(t, domain.StatusPending, env.bookings.created.Status)
}

func TestExecute_UnloadIntervalDeterminesEnd(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Type = domain.TypeUnload
	req.StartTime = "09:30"

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.EndTime)
}

func TestExecute_PastDateRejected(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, env.txManager.calls, "no transaction for a rejected date")
}

func TestExecute_FullDayBlackoutRejectsBeforeTransaction(t *testing.T) {
	env := newTestEnv()
	env.blackouts.blackouts = []*domain.Blackout{{ID: 5}}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayUnavailable)
	assert.Zero(t, env.txManager.calls)
}

func TestExecute_PartialBlackoutBlocksSlot(t *testing.T) {
	env := newTestEnv()
	env.blackouts.blackouts = []*domain.Blackout{
		{
			ID:        6,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_PartialBlackoutOtherSlotDoesNotBlock(t *testing.T) {
	env := newTestEnv()
	env.blackouts.blackouts = []*domain.Blackout{
		{
			ID:        6,
			StartTime: ptr.Ptr(types.TimeString("14:00")),
			EndTime:   ptr.Ptr(types.TimeString("15:00")),
		},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	env := newTestEnv()
	env.bookings.bookings = []*domain.Booking{
		{ID: 9, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	env := newTestEnv()
	env.bookings.bookings = []*domain.Booking{
		{ID: 9, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexRaceMapsToSlotNotAvailable(t *testing.T) {
	env := newTestEnv()
	env.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridSlotRejected(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.StartTime = "10:17"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	env := newTestEnv()
	env.schedule.window = nil
	env.schedule.err = scheduleRepo.ErrWindowNotConfigured

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("connection refused")

	t.Run("blackout store", func(t *testing.T) {
		env := newTestEnv()
		env.blackouts.err = storeErr
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking list", func(t *testing.T) {
		env := newTestEnv()
		env.bookings.listErr = storeErr
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking insert", func(t *testing.T) {
		env := newTestEnv()
		env.bookings.createErr = storeErr
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
