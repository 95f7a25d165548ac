package service

import (
	"context"
	"errors"

	"github.com/karbhat74/Aikyam/internal/eco"
	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/karbhat74/Aikyam/internal/repository"
)

var ErrNotEligible = errors.New("not enough trips for this reward")

type RewardService interface {
	Status(ctx context.Context, userID string) ([]eco.RewardProgress, error)
	Claim(ctx context.Context, userID string, rewardID int) (*model.RewardClaim, error)
}

type rewardService struct {
	trips  repository.TripRepository
	claims repository.RewardClaimRepository
}

func NewRewardService(trips repository.TripRepository, claims repository.RewardClaimRepository) RewardService {
	return &rewardService{trips: trips, claims: claims}
}

func (s *rewardService) Status(ctx context.Context, userID string) ([]eco.RewardProgress, error) {
	count, err := s.trips.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	claimed, err := s.claimedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return eco.RewardStatus(int(count), claimed), nil
}

func (s *rewardService) Claim(ctx context.Context, userID string, rewardID int) (*model.RewardClaim, error) {
	reward, err := eco.RewardByID(rewardID)
	if err != nil {
		return nil, err
	}
	count, err := s.trips.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if int(count) < reward.TripCount {
		return nil, ErrNotEligible
	}
	claim := &model.RewardClaim{UserID: userID, RewardID: rewardID}
	// A repeat claim hits the composite primary key and comes back as
	// repository.ErrAlreadyClaimed.
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *rewardService) claimedSet(ctx context.Context, userID string) (map[int]bool, error) {
	rows, err := s.claims.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	claimed := make(map[int]bool, len(rows))
	for _, c := range rows {
		claimed[c.RewardID] = true
	}
	return claimed, nil
}
