package models

import "time"

type PurchaseModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	UserID         string `gorm:"type:uuid;index:idx_purchase_user"`
	PackageName    string
	PackageType    string
	Amount         float64
	InitialValue   string
	RemainingValue string
	Status         string `gorm:"default:active"`
	ExpiryDate     time.Time
	CreatedAt      time.Time
}

func (PurchaseModel) TableName() string {
	return "purchases"
}
