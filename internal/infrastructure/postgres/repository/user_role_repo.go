package repository

import (
	"context"

	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRoleRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRoleRepository(db *gorm.DB) *DefaultUserRoleRepository {
	return &DefaultUserRoleRepository{DB: db}
}

func (r *DefaultUserRoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.UserRoleModel{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
