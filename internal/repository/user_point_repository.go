package repository

import (
	"context"

	"github.com/karbhat74/Aikyam/internal/model"
	"gorm.io/gorm"
)

// UserPointRepository reads the points ledger. Writes happen inside the
// trip-logging transaction in TripRepository.
type UserPointRepository interface {
	Get(ctx context.Context, userID string) (*model.UserPoint, error)
}

type userPointRepository struct {
	db *gorm.DB
}

func NewUserPointRepository(db *gorm.DB) UserPointRepository {
	return &userPointRepository{db: db}
}

func (r *userPointRepository) Get(ctx context.Context, userID string) (*model.UserPoint, error) {
	var up model.UserPoint
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(&up, &model.UserPoint{UserID: userID}).Error; err != nil {
		return nil, err
	}
	return &up, nil
}
