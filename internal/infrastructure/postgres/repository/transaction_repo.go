package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/mappers"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	txModel := mappers.ToGORMTransaction(tx)
	txModel.ID = uuid.New().String()

	if err := r.DB.WithContext(ctx).Create(txModel).Error; err != nil {
		return err
	}

	tx.ID = txModel.ID
	tx.CreatedAt = txModel.CreatedAt
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionsByUserID(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = mappers.ToDomainTransaction(&txModels[i])
	}

	return transactions, nil
}
