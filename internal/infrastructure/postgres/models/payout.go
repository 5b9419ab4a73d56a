package models

import "time"

type PayoutModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	PartnerID  string  `gorm:"type:uuid;index:idx_payout_partner"`
	Amount     float64 `gorm:"not null"`
	WeekEnding time.Time
	Status     string `gorm:"default:pending"`
	PaidAt     *time.Time
	CreatedAt  time.Time

	Partner *PartnerModel `gorm:"foreignKey:PartnerID"`
}

func (PayoutModel) TableName() string {
	return "payouts"
}
