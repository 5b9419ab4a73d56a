package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/mappers"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) GetPayoutsByPartnerID(ctx context.Context, partnerID string) ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModels[i])
	}

	return payouts, nil
}

// SettlePartner creates the payout record and moves pending_amount into
// total_earnings in one transaction, so a paid payout can never exist
// without the matching balance move. The pending_amount > 0 guard keeps
// a concurrent second settlement from paying out twice.
func (r *DefaultPayoutRepository) SettlePartner(ctx context.Context, partnerID string, weekEnding time.Time) (*domain.Payout, error) {
	var settled *domain.Payout

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var partnerModel models.PartnerModel
		if err := tx.Where("id = ?", partnerID).First(&partnerModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPartnerNotFound
			}
			return err
		}

		if partnerModel.PendingAmount <= 0 {
			return domain.ErrNothingToSettle
		}

		now := time.Now()
		payoutModel := models.PayoutModel{
			ID:         uuid.New().String(),
			PartnerID:  partnerModel.ID,
			Amount:     partnerModel.PendingAmount,
			WeekEnding: weekEnding,
			Status:     string(domain.PayoutStatusPaid),
			PaidAt:     &now,
		}
		if err := tx.Create(&payoutModel).Error; err != nil {
			return err
		}

		res := tx.Model(&models.PartnerModel{}).
			Where("id = ? AND pending_amount > 0", partnerModel.ID).
			Updates(touchUpdatedAt(map[string]interface{}{
				"total_earnings": gorm.Expr("total_earnings + pending_amount"),
				"pending_amount": 0,
			}))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNothingToSettle
		}

		settled = mappers.ToDomainPayout(&payoutModel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settled, nil
}
