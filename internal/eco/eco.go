// Package eco implements the CO2 accounting core: per-trip savings,
// aggregate impact metrics, badge tiers, and reward eligibility. Every
// function is pure; callers own persistence and ordering.
package eco

import (
	"errors"
	"math"

	"github.com/karbhat74/Aikyam/internal/model"
)

// Emission factors in kg CO2 per passenger-kilometer.
const (
	CarEmissionFactor   = 0.27
	BusEmissionFactor   = 0.04
	TrainEmissionFactor = 0.03
)

// PointsPerTrip is the fixed award for logging a trip, regardless of
// mode or distance.
const PointsPerTrip = 10

const (
	// kgCO2PerTreeYear is the average CO2 a tree absorbs in one year.
	kgCO2PerTreeYear = 21.7
	milesPerKm       = 0.62137
)

var (
	ErrUnknownMode     = errors.New("unknown transport mode")
	ErrInvalidDistance = errors.New("distance must be a positive finite number")
)

// ComputeSavings returns the CO2 saved by taking mode over a car for
// distanceKm kilometers, rounded to 2 decimal places.
func ComputeSavings(mode model.TransportMode, distanceKm float64) (float64, error) {
	var factor float64
	switch mode {
	case model.ModeBus:
		factor = BusEmissionFactor
	case model.ModeTrain:
		factor = TrainEmissionFactor
	default:
		return 0, ErrUnknownMode
	}
	if distanceKm <= 0 || math.IsInf(distanceKm, 0) || math.IsNaN(distanceKm) {
		return 0, ErrInvalidDistance
	}
	return round2((CarEmissionFactor - factor) * distanceKm), nil
}

// Summary holds the aggregate impact of a trip list.
type Summary struct {
	TotalSavingsKg  float64
	TotalDistanceKm float64
	TreesEquivalent int
	MilesAvoided    int
}

// Aggregate recomputes totals from the full trip list. It is idempotent:
// no incremental counter is authoritative, only the trips themselves.
func Aggregate(trips []model.Trip) Summary {
	var s Summary
	for _, t := range trips {
		s.TotalSavingsKg += t.SavingsKg
		s.TotalDistanceKm += t.DistanceKm
	}
	s.TotalSavingsKg = round2(s.TotalSavingsKg)
	s.TotalDistanceKm = round2(s.TotalDistanceKm)
	s.TreesEquivalent = int(math.Floor(s.TotalSavingsKg / kgCO2PerTreeYear))
	s.MilesAvoided = int(math.Floor(s.TotalDistanceKm * milesPerKm))
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
