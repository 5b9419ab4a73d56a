package domain

import (
	"context"
	"time"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeGift     TransactionType = "gift"
)

type Transaction struct {
	ID              string
	UserID          string
	PackageName     string
	PackageType     string
	Amount          float64
	PaymentNumber   string
	RecipientNumber *string
	TransactionType TransactionType
	Status          TransactionStatus
	CreatedAt       time.Time
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransactionsByUserID(ctx context.Context, userID string) ([]*Transaction, error)
}
