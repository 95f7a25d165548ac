package model

import "time"

// RewardClaim records that a user redeemed one reward from the static
// reward table. The composite key makes a claim once-per-user-per-reward.
type RewardClaim struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:36"`
	RewardID  int       `gorm:"column:reward_id;primaryKey"`
	ClaimedAt time.Time `gorm:"autoCreateTime"`
}

func (RewardClaim) TableName() string {
	return "reward_claims"
}
