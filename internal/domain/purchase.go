package domain

import (
	"context"
	"time"
)

type PurchaseStatus string

const (
	PurchaseStatusActive  PurchaseStatus = "active"
	PurchaseStatusExpired PurchaseStatus = "expired"
)

type Purchase struct {
	ID             string
	UserID         string
	PackageName    string
	PackageType    string
	Amount         float64
	InitialValue   string
	RemainingValue string
	Status         PurchaseStatus
	ExpiryDate     time.Time
	CreatedAt      time.Time
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *Purchase) error
	GetActivePurchasesByUserID(ctx context.Context, userID string) ([]*Purchase, error)
}
