package domain

import (
	"context"
	"time"

	partnerdto "github.com/msmarket/market-service/internal/usecase/dto/partner"
)

type Partner struct {
	ID            string
	UserID        string
	ReferralCode  string
	PendingAmount float64
	TotalEarnings float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner *Partner) error
	GetPartnerByID(ctx context.Context, partnerID string) (*Partner, error)
	GetPartnerByUserID(ctx context.Context, userID string) (*Partner, error)
	GetPartnerByReferralCode(ctx context.Context, code string) (*Partner, error)
	// GetPayablePartners returns partners with pending_amount > 0,
	// highest pending first.
	GetPayablePartners(ctx context.Context) ([]*Partner, error)
	// GetTopPartners returns up to limit partners ordered by
	// total_earnings DESC, created_at ASC, id ASC.
	GetTopPartners(ctx context.Context, limit int) ([]*Partner, error)
	GetAllPartners(ctx context.Context) ([]*Partner, error)
	CountPartners(ctx context.Context) (int64, error)
	SumBalances(ctx context.Context) (pending float64, earnings float64, err error)
}

type PartnerUsecase interface {
	RegisterPartner(ctx context.Context, userID string) (*Partner, error)
	Dashboard(ctx context.Context, userID string) (*partnerdto.DashboardOutput, error)
	Leads(ctx context.Context, userID string) ([]*partnerdto.LeadOutput, error)
	Payouts(ctx context.Context, userID string) ([]*Payout, error)
	WeeklyReports(ctx context.Context, userID string) ([]*partnerdto.WeeklyReport, error)
	Leaderboard(ctx context.Context) ([]*partnerdto.LeaderboardEntry, error)
}
