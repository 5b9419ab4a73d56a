package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/kafka"
	"github.com/msmarket/market-service/internal/infrastructure/logger"
	"github.com/msmarket/market-service/internal/infrastructure/metrics"
	payoutdto "github.com/msmarket/market-service/internal/usecase/dto/payout"
)

type DefaultPayoutUsecase struct {
	PayoutRepo  domain.PayoutRepository
	PartnerRepo domain.PartnerRepository
	Events      EventPublisher
	Metrics     *metrics.MarketMetrics
	AuditLog    logger.BookkeepingEventLogger
}

func NewDefaultPayoutUsecase(
	payoutRepo domain.PayoutRepository,
	partnerRepo domain.PartnerRepository,
	events EventPublisher,
	marketMetrics *metrics.MarketMetrics,
	auditLog logger.BookkeepingEventLogger,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		PayoutRepo:  payoutRepo,
		PartnerRepo: partnerRepo,
		Events:      events,
		Metrics:     marketMetrics,
		AuditLog:    auditLog,
	}
}

func (uc *DefaultPayoutUsecase) ListPayable(ctx context.Context) ([]*domain.Partner, error) {
	return uc.PartnerRepo.GetPayablePartners(ctx)
}

// ProcessPartner settles one partner: pending amount snapshotted into a paid
// payout, balance moved into total earnings, all in one transaction.
func (uc *DefaultPayoutUsecase) ProcessPartner(ctx context.Context, partnerID string) (*domain.Payout, error) {
	weekEnding := truncateToDate(time.Now())

	payout, err := uc.PayoutRepo.SettlePartner(ctx, partnerID, weekEnding)
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordPayoutError(partnerID)
		}
		return nil, err
	}

	uc.recordSettlement(ctx, payout)
	return payout, nil
}

// ProcessAll settles every payable partner independently. A failure settles
// nothing for that partner but never rolls back or stops the others; the
// result reports each partner on its own.
func (uc *DefaultPayoutUsecase) ProcessAll(ctx context.Context) (*payoutdto.BatchResult, error) {
	partners, err := uc.PartnerRepo.GetPayablePartners(ctx)
	if err != nil {
		return nil, err
	}

	weekEnding := truncateToDate(time.Now())
	result := &payoutdto.BatchResult{
		WeekEnding: weekEnding,
		Entries:    make([]payoutdto.BatchEntry, 0, len(partners)),
	}

	for _, partner := range partners {
		entry := payoutdto.BatchEntry{
			PartnerID:    partner.ID,
			ReferralCode: partner.ReferralCode,
		}

		payout, err := uc.PayoutRepo.SettlePartner(ctx, partner.ID, weekEnding)
		if err != nil {
			entry.Error = err.Error()
			result.Failed++
			if uc.Metrics != nil {
				uc.Metrics.RecordPayoutError(partner.ID)
			}
			slog.Error("payout settlement failed", "partner_id", partner.ID, "error", err.Error())
		} else {
			entry.Amount = payout.Amount
			result.Processed++
			uc.recordSettlement(ctx, payout)
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func (uc *DefaultPayoutUsecase) recordSettlement(ctx context.Context, payout *domain.Payout) {
	if uc.Metrics != nil {
		uc.Metrics.RecordPayout(payout.PartnerID, payout.Amount)
	}

	if uc.AuditLog != nil {
		if err := uc.AuditLog.LogSettlement(ctx, logger.SettlementLoggedEvent{
			PayoutID:   payout.ID,
			PartnerID:  payout.PartnerID,
			Amount:     payout.Amount,
			WeekEnding: payout.WeekEnding,
		}); err != nil {
			slog.Error("failed to audit-log settlement", "payout_id", payout.ID, "error", err.Error())
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishPayout(kafka.PayoutEvent{
			PayoutID:   payout.ID,
			PartnerID:  payout.PartnerID,
			Amount:     payout.Amount,
			WeekEnding: payout.WeekEnding,
			Timestamp:  time.Now(),
		}); err != nil {
			slog.Error("failed to publish payout event", "payout_id", payout.ID, "error", err.Error())
		}
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
