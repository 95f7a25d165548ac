package repository

import (
	"context"
	"errors"

	"github.com/karbhat74/Aikyam/internal/model"
	"gorm.io/gorm"
)

// ErrAlreadyClaimed reports a second claim for the same (user, reward)
// pair. The composite primary key enforces once-per-user at the store.
var ErrAlreadyClaimed = errors.New("reward already claimed")

type RewardClaimRepository interface {
	Create(ctx context.Context, claim *model.RewardClaim) error
	ListByUser(ctx context.Context, userID string) ([]model.RewardClaim, error)
}

type rewardClaimRepository struct {
	db *gorm.DB
}

func NewRewardClaimRepository(db *gorm.DB) RewardClaimRepository {
	return &rewardClaimRepository{db: db}
}

func (r *rewardClaimRepository) Create(ctx context.Context, claim *model.RewardClaim) error {
	if err := r.db.WithContext(ctx).Create(claim).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrAlreadyClaimed
		}
		return err
	}
	return nil
}

func (r *rewardClaimRepository) ListByUser(ctx context.Context, userID string) ([]model.RewardClaim, error) {
	var claims []model.RewardClaim
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("claimed_at asc").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
