package models

import "time"

type TransactionModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	UserID          string `gorm:"type:uuid;index:idx_transaction_user"`
	PackageName     string
	PackageType     string
	Amount          float64
	PaymentNumber   string
	RecipientNumber *string
	TransactionType string
	Status          string `gorm:"default:completed"`
	CreatedAt       time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
