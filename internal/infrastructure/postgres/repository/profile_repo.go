package repository

import (
	"context"
	"errors"

	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/mappers"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	DB *gorm.DB
}

func NewDefaultProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{DB: db}
}

func (r *DefaultProfileRepository) GetProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profileModel models.ProfileModel
	if err := r.DB.WithContext(ctx).Where("id = ?", userID).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	return mappers.ToDomainProfile(&profileModel), nil
}

func (r *DefaultProfileRepository) GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]*domain.Profile, error) {
	if len(userIDs) == 0 {
		return map[string]*domain.Profile{}, nil
	}

	var profileModels []models.ProfileModel
	if err := r.DB.WithContext(ctx).Where("id IN (?)", userIDs).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make(map[string]*domain.Profile, len(profileModels))
	for i := range profileModels {
		profiles[profileModels[i].ID] = mappers.ToDomainProfile(&profileModels[i])
	}

	return profiles, nil
}

func (r *DefaultProfileRepository) UpdateProfile(ctx context.Context, userID, fullName, phoneNumber string) error {
	updateData := map[string]interface{}{
		"full_name":    fullName,
		"phone_number": phoneNumber,
	}

	res := r.DB.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ?", userID).
		Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
