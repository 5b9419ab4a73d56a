package domain

import (
	"context"
	"time"
)

type ReferralStatus string

const (
	ReferralStatusLead      ReferralStatus = "lead"
	ReferralStatusConverted ReferralStatus = "converted"
)

type Referral struct {
	ID          string
	PartnerID   string
	CustomerID  string
	Status      ReferralStatus
	CreatedAt   time.Time
	ConvertedAt *time.Time
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *Referral) error
	GetReferralsByPartnerID(ctx context.Context, partnerID string) ([]*Referral, error)
	GetReferralByCustomerID(ctx context.Context, customerID string) (*Referral, error)
	CountConvertedByPartnerID(ctx context.Context, partnerID string) (int64, error)
	CountReferrals(ctx context.Context) (int64, error)
	// ConvertLatestLead flips the customer's most recent lead referral to
	// converted and credits commission to the owning partner, atomically.
	// Returns ErrNoLeadReferral when the customer has no lead referral,
	// including when a concurrent conversion won the race.
	ConvertLatestLead(ctx context.Context, customerID string, commission float64, at time.Time) (*Referral, error)
}

type ReferralUsecase interface {
	RegisterLead(ctx context.Context, referralCode, customerID string) (*Referral, error)
	ConvertLead(ctx context.Context, customerID string) (*Referral, error)
}
