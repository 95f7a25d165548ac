package model

import "time"

type TransportMode string

const (
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
)

// Trip is one logged transit ride. Rows are immutable: there is no edit or
// delete path, totals are always recomputed from the full list.
type Trip struct {
	ID         uint64        `gorm:"primaryKey;autoIncrement"`
	UserID     string        `gorm:"column:user_id;size:36;index;not null"`
	Mode       TransportMode `gorm:"column:mode;size:16;not null"`
	DistanceKm float64       `gorm:"column:distance_km;not null"`
	SavingsKg  float64       `gorm:"column:savings_kg;not null"`
	TicketCode *string       `gorm:"column:ticket_code;size:64"`
	CreatedAt  time.Time     `gorm:"autoCreateTime"`
}

func (Trip) TableName() string {
	return "trips"
}
