package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/kafka"
	"github.com/msmarket/market-service/internal/infrastructure/logger"
	"github.com/msmarket/market-service/internal/infrastructure/metrics"
)

type DefaultReferralUsecase struct {
	ReferralRepo   domain.ReferralRepository
	PartnerRepo    domain.PartnerRepository
	CommissionUnit float64
	Events         EventPublisher
	Metrics        *metrics.MarketMetrics
	AuditLog       logger.BookkeepingEventLogger
}

func NewDefaultReferralUsecase(
	referralRepo domain.ReferralRepository,
	partnerRepo domain.PartnerRepository,
	commissionUnit float64,
	events EventPublisher,
	marketMetrics *metrics.MarketMetrics,
	auditLog logger.BookkeepingEventLogger,
) *DefaultReferralUsecase {
	return &DefaultReferralUsecase{
		ReferralRepo:   referralRepo,
		PartnerRepo:    partnerRepo,
		CommissionUnit: commissionUnit,
		Events:         events,
		Metrics:        marketMetrics,
		AuditLog:       auditLog,
	}
}

// RegisterLead attributes a newly signed-up customer to the partner owning
// the referral code. First attribution wins: a customer who already has a
// referral row keeps it.
func (uc *DefaultReferralUsecase) RegisterLead(ctx context.Context, referralCode, customerID string) (*domain.Referral, error) {
	partner, err := uc.PartnerRepo.GetPartnerByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, err
	}

	existing, err := uc.ReferralRepo.GetReferralByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyReferred
	}

	referral := &domain.Referral{
		PartnerID:  partner.ID,
		CustomerID: customerID,
	}
	if err := uc.ReferralRepo.CreateReferral(ctx, referral); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordLeadRegistered(partner.ID)
	}

	return referral, nil
}

// ConvertLead flips the customer's most recent lead referral to converted
// and credits the owning partner. A customer without a lead referral is not
// an error for callers running this as a purchase side effect; they check
// for ErrNoLeadReferral.
func (uc *DefaultReferralUsecase) ConvertLead(ctx context.Context, customerID string) (*domain.Referral, error) {
	now := time.Now()
	referral, err := uc.ReferralRepo.ConvertLatestLead(ctx, customerID, uc.CommissionUnit, now)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordConversion(referral.PartnerID, uc.CommissionUnit)
	}

	if uc.AuditLog != nil {
		if err := uc.AuditLog.LogConversion(ctx, logger.ConversionLoggedEvent{
			ReferralID: referral.ID,
			PartnerID:  referral.PartnerID,
			CustomerID: referral.CustomerID,
			Commission: uc.CommissionUnit,
			Timestamp:  now,
		}); err != nil {
			slog.Error("failed to audit-log conversion", "referral_id", referral.ID, "error", err.Error())
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishConversion(kafka.ConversionEvent{
			ReferralID: referral.ID,
			PartnerID:  referral.PartnerID,
			CustomerID: referral.CustomerID,
			Commission: uc.CommissionUnit,
			Timestamp:  now,
		}); err != nil {
			slog.Error("failed to publish conversion event", "referral_id", referral.ID, "error", err.Error())
		}
	}

	return referral, nil
}
