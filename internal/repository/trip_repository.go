package repository

import (
	"context"

	"github.com/karbhat74/Aikyam/internal/model"
	"gorm.io/gorm"
)

type TripRepository interface {
	// CreateWithPoints persists the trip and its point award in one
	// transaction, so a trip can never exist without its points.
	CreateWithPoints(ctx context.Context, trip *model.Trip, points int) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error)
	// ListAllByUser returns every trip for a user, newest first, without
	// pagination. Summary recomputes totals from the full list.
	ListAllByUser(ctx context.Context, userID string) ([]model.Trip, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateWithPoints(ctx context.Context, trip *model.Trip, points int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		if points <= 0 {
			return nil
		}
		var up model.UserPoint
		if err := tx.Where("user_id = ?", trip.UserID).
			FirstOrCreate(&up, &model.UserPoint{UserID: trip.UserID}).Error; err != nil {
			return err
		}
		return tx.Model(&up).
			Update("total_points", up.TotalPoints+points).Error
	})
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Trip, int64, error) {
	var (
		trips []model.Trip
		total int64
	)
	if err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&trips).Error; err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *tripRepository) ListAllByUser(ctx context.Context, userID string) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
