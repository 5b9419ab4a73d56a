package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/mappers"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPurchaseRepository struct {
	DB *gorm.DB
}

func NewDefaultPurchaseRepository(db *gorm.DB) *DefaultPurchaseRepository {
	return &DefaultPurchaseRepository{DB: db}
}

func (r *DefaultPurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	purchaseModel := mappers.ToGORMPurchase(purchase)
	purchaseModel.ID = uuid.New().String()

	if err := r.DB.WithContext(ctx).Create(purchaseModel).Error; err != nil {
		return err
	}

	purchase.ID = purchaseModel.ID
	purchase.CreatedAt = purchaseModel.CreatedAt
	return nil
}

func (r *DefaultPurchaseRepository) GetActivePurchasesByUserID(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(domain.PurchaseStatusActive)).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	purchases := make([]*domain.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = mappers.ToDomainPurchase(&purchaseModels[i])
	}

	return purchases, nil
}
