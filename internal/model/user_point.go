package model

import "time"

// UserPoint stores the cumulative reward points earned by logging trips.
type UserPoint struct {
	UserID      string    `gorm:"column:user_id;primaryKey;size:36"`
	TotalPoints int       `gorm:"column:total_points;not null;default:0"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (UserPoint) TableName() string {
	return "user_points"
}
