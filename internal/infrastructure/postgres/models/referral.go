package models

import "time"

type ReferralModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	PartnerID   string `gorm:"type:uuid;index:idx_referral_partner"`
	CustomerID  string `gorm:"type:uuid;index:idx_referral_customer"`
	Status      string `gorm:"index;default:lead"`
	CreatedAt   time.Time
	ConvertedAt *time.Time

	Partner *PartnerModel `gorm:"foreignKey:PartnerID"`
}

func (ReferralModel) TableName() string {
	return "referrals"
}
