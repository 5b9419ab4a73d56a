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

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateReferral(ctx context.Context, referral *domain.Referral) error {
	referralModel := models.ReferralModel{
		ID:         uuid.New().String(),
		PartnerID:  referral.PartnerID,
		CustomerID: referral.CustomerID,
		Status:     string(domain.ReferralStatusLead),
	}

	if err := r.DB.WithContext(ctx).Create(&referralModel).Error; err != nil {
		return err
	}

	referral.ID = referralModel.ID
	referral.Status = domain.ReferralStatusLead
	referral.CreatedAt = referralModel.CreatedAt
	return nil
}

func (r *DefaultReferralRepository) GetReferralsByPartnerID(ctx context.Context, partnerID string) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.DB.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&referralModels).Error; err != nil {
		return nil, err
	}

	referrals := make([]*domain.Referral, len(referralModels))
	for i := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModels[i])
	}

	return referrals, nil
}

func (r *DefaultReferralRepository) GetReferralByCustomerID(ctx context.Context, customerID string) (*domain.Referral, error) {
	var referralModel models.ReferralModel
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		First(&referralModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainReferral(&referralModel), nil
}

func (r *DefaultReferralRepository) CountConvertedByPartnerID(ctx context.Context, partnerID string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.ReferralModel{}).
		Where("partner_id = ? AND status = ?", partnerID, string(domain.ReferralStatusConverted)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultReferralRepository) CountReferrals(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.ReferralModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ConvertLatestLead performs the lead -> converted transition and the
// partner commission credit in a single transaction. The status guard on
// the UPDATE makes the transition at-most-once: of two concurrent buyers
// only one sees RowsAffected == 1, the other rolls back as a no-op.
func (r *DefaultReferralRepository) ConvertLatestLead(ctx context.Context, customerID string, commission float64, at time.Time) (*domain.Referral, error) {
	var converted *domain.Referral

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var referralModel models.ReferralModel
		if err := tx.
			Where("customer_id = ? AND status = ?", customerID, string(domain.ReferralStatusLead)).
			Order("created_at DESC").
			First(&referralModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoLeadReferral
			}
			return err
		}

		res := tx.Model(&models.ReferralModel{}).
			Where("id = ? AND status = ?", referralModel.ID, string(domain.ReferralStatusLead)).
			Updates(map[string]interface{}{
				"status":       string(domain.ReferralStatusConverted),
				"converted_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race to a concurrent conversion
			return domain.ErrNoLeadReferral
		}

		if err := tx.Model(&models.PartnerModel{}).
			Where("id = ?", referralModel.PartnerID).
			Updates(touchUpdatedAt(map[string]interface{}{
				"pending_amount": gorm.Expr("pending_amount + ?", commission),
			})).Error; err != nil {
			return err
		}

		referralModel.Status = string(domain.ReferralStatusConverted)
		referralModel.ConvertedAt = &at
		converted = mappers.ToDomainReferral(&referralModel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converted, nil
}
