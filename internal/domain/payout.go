package domain

import (
	"context"
	"time"

	payoutdto "github.com/msmarket/market-service/internal/usecase/dto/payout"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

type Payout struct {
	ID         string
	PartnerID  string
	Amount     float64
	WeekEnding time.Time
	Status     PayoutStatus
	PaidAt     *time.Time
	CreatedAt  time.Time
}

type PayoutRepository interface {
	GetPayoutsByPartnerID(ctx context.Context, partnerID string) ([]*Payout, error)
	// SettlePartner snapshots the partner's pending amount into a paid
	// payout and moves it into total_earnings in one transaction.
	// Returns ErrNothingToSettle when pending_amount is zero.
	SettlePartner(ctx context.Context, partnerID string, weekEnding time.Time) (*Payout, error)
}

type PayoutUsecase interface {
	ListPayable(ctx context.Context) ([]*Partner, error)
	ProcessPartner(ctx context.Context, partnerID string) (*Payout, error)
	ProcessAll(ctx context.Context) (*payoutdto.BatchResult, error)
}
