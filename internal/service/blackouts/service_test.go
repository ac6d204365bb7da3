package blackouts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisync/scheduling-service/internal/domain"
	blackoutRepo "github.com/logisync/scheduling-service/internal/infra/storage/blackout"
	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
	"github.com/logisync/scheduling-service/pkg/ptr"
)

type stubRepo struct {
	blackouts []*domain.Blackout
	createErr error
	listErr   error
	deleteErr error
	created   *domain.Blackout
}

func (s *stubRepo) Create(_ context.Context, blackout *domain.Blackout) (*domain.Blackout, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *blackout
	created.ID = 3
	s.created = &created
	return &created, nil
}

func (s *stubRepo) ListByDate(_ context.Context, _ time.Time, _ *domain.BookingType) ([]*domain.Blackout, error) {
	return s.blackouts, s.listErr
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	t.Run("full-day blackout", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateBlackoutRequest{
			Date:   testDate(),
			Reason: ptr.Ptr("manutenção do portão"),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.StartTime)
		assert.Nil(t, resp.Type)
		require.NotNil(t, repo.created)
		assert.True(t, repo.created.IsFullDay())
	})

	t.Run("partial typed blackout", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateBlackoutRequest{
			Date:      testDate(),
			StartTime: ptr.Ptr("10:00"),
			EndTime:   ptr.Ptr("11:00"),
			Type:      ptr.Ptr("carga"),
		})
		require.NoError(t, err)
		assert.Equal(t, "10:00", *resp.StartTime)
		assert.Equal(t, "carga", *resp.Type)
		require.NotNil(t, repo.created)
		assert.False(t, repo.created.IsFullDay())
	})

	tests := []struct {
		name string
		req  *models.CreateBlackoutRequest
	}{
		{
			"missing date",
			&models.CreateBlackoutRequest{},
		},
		{
			"start without end",
			&models.CreateBlackoutRequest{Date: testDate(), StartTime: ptr.Ptr("10:00")},
		},
		{
			"end without start",
			&models.CreateBlackoutRequest{Date: testDate(), EndTime: ptr.Ptr("11:00")},
		},
		{
			"end not after start",
			&models.CreateBlackoutRequest{Date: testDate(), StartTime: ptr.Ptr("11:00"), EndTime: ptr.Ptr("11:00")},
		},
		{
			"malformed start",
			&models.CreateBlackoutRequest{Date: testDate(), StartTime: ptr.Ptr("10h"), EndTime: ptr.Ptr("11:00")},
		},
		{
			"unknown type",
			&models.CreateBlackoutRequest{Date: testDate(), Type: ptr.Ptr("transbordo")},
		},
		{
			"reason too long",
			&models.CreateBlackoutRequest{Date: testDate(), Reason: ptr.Ptr(strings.Repeat("x", domain.MaxBlackoutReasonLength+1))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubRepo{}, nopLogger{})
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByDate(t *testing.T) {
	repo := &stubRepo{blackouts: []*domain.Blackout{{ID: 1, Date: testDate()}}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), testDate())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.ListByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	t.Run("existing blackout", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})
		assert.NoError(t, svc.Delete(context.Background(), 3))
	})

	t.Run("missing blackout maps to ErrBlackoutNotFound", func(t *testing.T) {
		svc := NewService(&stubRepo{deleteErr: blackoutRepo.ErrBlackoutNotFound}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrBlackoutNotFound)
	})
}
