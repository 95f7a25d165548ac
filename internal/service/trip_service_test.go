package service

import (
	"context"
	"errors"
	"testing"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTripRepo struct {
	CreateWithPointsFunc func(ctx context.Context, trip *model.Trip, points int) error
	ListByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error)
	ListAllByUserFunc    func(ctx context.Context, userID string) ([]model.Trip, error)
	CountByUserFunc      func(ctx context.Context, userID string) (int64, error)
}

func (m *mockTripRepo) CreateWithPoints(ctx context.Context, trip *model.Trip, points int) error {
	return m.CreateWithPointsFunc(ctx, trip, points)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error) {
	return m.ListByUserFunc(ctx, userID, limit, offset)
}
func (m *mockTripRepo) ListAllByUser(ctx context.Context, userID string) ([]model.Trip, error) {
	return m.ListAllByUserFunc(ctx, userID)
}
func (m *mockTripRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return m.CountByUserFunc(ctx, userID)
}

type mockPointRepo struct {
	GetFunc func(ctx context.Context, userID string) (*model.UserPoint, error)
}

func (m *mockPointRepo) Get(ctx context.Context, userID string) (*model.UserPoint, error) {
	return m.GetFunc(ctx, userID)
}

func TestLogTrip(t *testing.T) {
	var created *model.Trip
	var awarded int
	trips := &mockTripRepo{
		CreateWithPointsFunc: func(_ context.Context, trip *model.Trip, points int) error {
			created = trip
			awarded += points
			return nil
		},
	}
	svc := NewTripService(trips, &mockPointRepo{})

	trip, err := svc.LogTrip(context.Background(), "u-1", model.ModeBus, 5, "TKT-123")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 1.15, trip.SavingsKg)
	assert.Equal(t, "u-1", trip.UserID)
	require.NotNil(t, trip.TicketCode)
	assert.Equal(t, "TKT-123", *trip.TicketCode)
	assert.Equal(t, eco.PointsPerTrip, awarded)
}

func TestLogTripOmitsBlankTicket(t *testing.T) {
	trips := &mockTripRepo{
		CreateWithPointsFunc: func(_ context.Context, _ *model.Trip, _ int) error { return nil },
	}
	svc := NewTripService(trips, &mockPointRepo{})

	trip, err := svc.LogTrip(context.Background(), "u-1", model.ModeTrain, 10, "   ")
	require.NoError(t, err)
	assert.Nil(t, trip.TicketCode)
	assert.Equal(t, 2.40, trip.SavingsKg)
}

func TestLogTripValidation(t *testing.T) {
	svc := NewTripService(&mockTripRepo{}, &mockPointRepo{})

	tests := []struct {
		name  string
		mode  model.TransportMode
		dist  float64
		field string
	}{
		{"unknown mode", "plane", 5, "mode"},
		{"too short", model.ModeBus, 0.5, "distanceKm"},
		{"too long", model.ModeBus, 1001, "distanceKm"},
		{"negative", model.ModeTrain, -1, "distanceKm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogTrip(context.Background(), "u-1", tt.mode, tt.dist, "")
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSummary(t *testing.T) {
	stored := []model.Trip{
		{Mode: model.ModeBus, DistanceKm: 100, SavingsKg: 23},
		{Mode: model.ModeBus, DistanceKm: 50, SavingsKg: 11.5},
		{Mode: model.ModeTrain, DistanceKm: 10, SavingsKg: 2.4},
	}
	trips := &mockTripRepo{
		ListAllByUserFunc: func(_ context.Context, userID string) ([]model.Trip, error) {
			assert.Equal(t, "u-1", userID)
			return stored, nil
		},
	}
	points := &mockPointRepo{
		GetFunc: func(_ context.Context, _ string) (*model.UserPoint, error) {
			return &model.UserPoint{UserID: "u-1", TotalPoints: 30}, nil
		},
	}
	svc := NewTripService(trips, points)

	got, err := svc.Summary(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 36.9, got.Totals.TotalSavingsKg)
	assert.Equal(t, 160.0, got.Totals.TotalDistanceKm)
	assert.Equal(t, 1, got.Totals.TreesEquivalent)
	assert.Equal(t, 99, got.Totals.MilesAvoided)
	assert.Equal(t, int64(3), got.TripCount)
	assert.Equal(t, 30, got.Points)
	assert.Equal(t, "Eco Starter", got.Badge.Name)
	require.NotNil(t, got.NextBadge)
	assert.Equal(t, "Eco Star", got.NextBadge.Name)
	// Bus-dominated history gets the bus tip.
	assert.Contains(t, got.Tip, "bus")
}

func TestSummaryEmpty(t *testing.T) {
	trips := &mockTripRepo{
		ListAllByUserFunc: func(_ context.Context, _ string) ([]model.Trip, error) {
			return nil, nil
		},
	}
	points := &mockPointRepo{
		GetFunc: func(_ context.Context, _ string) (*model.UserPoint, error) {
			return &model.UserPoint{UserID: "u-1"}, nil
		},
	}
	svc := NewTripService(trips, points)

	got, err := svc.Summary(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Zero(t, got.Totals.TotalSavingsKg)
	assert.Zero(t, got.Totals.TreesEquivalent)
	assert.Equal(t, "Eco Starter", got.Badge.Name)
	assert.Contains(t, got.Tip, "Start your green journey")
}
