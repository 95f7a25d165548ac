package service

import (
	"context"
	"strings"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/karbhat74/Aikyam/internal/repository"
)

const (
	minTripDistanceKm = 1
	maxTripDistanceKm = 1000
)

// DashboardSummary is everything the dashboard shows at once, recomputed
// from the persisted trip list on every call.
type DashboardSummary struct {
	Totals    eco.Summary
	TripCount int64
	Points    int
	Badge     eco.Badge
	NextBadge *eco.Badge
	Tip       string
}

type TripService interface {
	LogTrip(ctx context.Context, userID string, mode model.TransportMode, distanceKm float64, ticketCode string) (*model.Trip, error)
	ListTrips(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error)
	Summary(ctx context.Context, userID string) (*DashboardSummary, error)
}

type tripService struct {
	trips  repository.TripRepository
	points repository.UserPointRepository
}

func NewTripService(trips repository.TripRepository, points repository.UserPointRepository) TripService {
	return &tripService{trips: trips, points: points}
}

func (s *tripService) LogTrip(ctx context.Context, userID string, mode model.TransportMode, distanceKm float64, ticketCode string) (*model.Trip, error) {
	if mode != model.ModeBus && mode != model.ModeTrain {
		return nil, &ValidationError{Field: "mode", Reason: "must be bus or train"}
	}
	if distanceKm < minTripDistanceKm || distanceKm > maxTripDistanceKm {
		return nil, &ValidationError{Field: "distanceKm", Reason: "must be between 1 and 1000"}
	}
	savings, err := eco.ComputeSavings(mode, distanceKm)
	if err != nil {
		return nil, &ValidationError{Field: "distanceKm", Reason: err.Error()}
	}

	trip := &model.Trip{
		UserID:     userID,
		Mode:       mode,
		DistanceKm: distanceKm,
		SavingsKg:  savings,
	}
	if code := strings.TrimSpace(ticketCode); code != "" {
		trip.TicketCode = &code
	}
	// Fixed award per trip, whatever the mode or distance; the trip and
	// its points commit or roll back together.
	if err := s.trips.CreateWithPoints(ctx, trip, eco.PointsPerTrip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.trips.ListByUser(ctx, userID, limit, offset)
}

func (s *tripService) Summary(ctx context.Context, userID string) (*DashboardSummary, error) {
	trips, err := s.trips.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	up, err := s.points.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Totals:    eco.Aggregate(trips),
		TripCount: int64(len(trips)),
		Points:    up.TotalPoints,
		Badge:     eco.CurrentBadge(up.TotalPoints),
		Tip:       eco.PersonalizedTip(trips),
	}
	if next, ok := eco.NextBadge(up.TotalPoints); ok {
		summary.NextBadge = &next
	}
	return summary, nil
}
