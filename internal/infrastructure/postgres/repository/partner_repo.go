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

type DefaultPartnerRepository struct {
	DB *gorm.DB
}

func NewDefaultPartnerRepository(db *gorm.DB) *DefaultPartnerRepository {
	return &DefaultPartnerRepository{DB: db}
}

func (r *DefaultPartnerRepository) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	partnerModel := models.PartnerModel{
		ID:            uuid.New().String(),
		UserID:        partner.UserID,
		ReferralCode:  partner.ReferralCode,
		PendingAmount: partner.PendingAmount,
		TotalEarnings: partner.TotalEarnings,
	}

	if err := r.DB.WithContext(ctx).Create(&partnerModel).Error; err != nil {
		return err
	}

	partner.ID = partnerModel.ID
	partner.CreatedAt = partnerModel.CreatedAt
	partner.UpdatedAt = partnerModel.UpdatedAt
	return nil
}

func (r *DefaultPartnerRepository) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	var partnerModel models.PartnerModel
	if err := r.DB.WithContext(ctx).Where("id = ?", partnerID).First(&partnerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPartner(&partnerModel), nil
}

func (r *DefaultPartnerRepository) GetPartnerByUserID(ctx context.Context, userID string) (*domain.Partner, error) {
	var partnerModel models.PartnerModel
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&partnerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPartner(&partnerModel), nil
}

func (r *DefaultPartnerRepository) GetPartnerByReferralCode(ctx context.Context, code string) (*domain.Partner, error) {
	var partnerModel models.PartnerModel
	if err := r.DB.WithContext(ctx).Where("referral_code = ?", code).First(&partnerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPartner(&partnerModel), nil
}

func (r *DefaultPartnerRepository) GetPayablePartners(ctx context.Context) ([]*domain.Partner, error) {
	var partnerModels []models.PartnerModel
	if err := r.DB.WithContext(ctx).
		Where("pending_amount > 0").
		Order("pending_amount DESC").
		Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]*domain.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = mappers.ToDomainPartner(&partnerModels[i])
	}

	return partners, nil
}

func (r *DefaultPartnerRepository) GetTopPartners(ctx context.Context, limit int) ([]*domain.Partner, error) {
	var partnerModels []models.PartnerModel
	// created_at/id keep the order deterministic when earnings tie
	if err := r.DB.WithContext(ctx).
		Order("total_earnings DESC").
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]*domain.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = mappers.ToDomainPartner(&partnerModels[i])
	}

	return partners, nil
}

func (r *DefaultPartnerRepository) GetAllPartners(ctx context.Context) ([]*domain.Partner, error) {
	var partnerModels []models.PartnerModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]*domain.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = mappers.ToDomainPartner(&partnerModels[i])
	}

	return partners, nil
}

func (r *DefaultPartnerRepository) CountPartners(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.PartnerModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DefaultPartnerRepository) SumBalances(ctx context.Context) (float64, float64, error) {
	var sums struct {
		Pending  float64
		Earnings float64
	}
	if err := r.DB.WithContext(ctx).Model(&models.PartnerModel{}).
		Select("COALESCE(SUM(pending_amount), 0) AS pending, COALESCE(SUM(total_earnings), 0) AS earnings").
		Scan(&sums).Error; err != nil {
		return 0, 0, err
	}
	return sums.Pending, sums.Earnings, nil
}

// touchUpdatedAt is shared by the settlement and conversion writes that
// bypass gorm's Updates tracking with raw expression updates.
func touchUpdatedAt(data map[string]interface{}) map[string]interface{} {
	data["updated_at"] = time.Now()
	return data
}
