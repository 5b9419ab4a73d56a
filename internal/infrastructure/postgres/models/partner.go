package models

import "time"

type PartnerModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	UserID        string  `gorm:"type:uuid;index:idx_partner_user,unique"`
	ReferralCode  string  `gorm:"uniqueIndex:idx_partner_referral_code"`
	PendingAmount float64 `gorm:"not null;default:0"`
	TotalEarnings float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PartnerModel) TableName() string {
	return "partners"
}
