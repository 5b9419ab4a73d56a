package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              tx.ID,
		UserID:          tx.UserID,
		PackageName:     tx.PackageName,
		PackageType:     tx.PackageType,
		Amount:          tx.Amount,
		PaymentNumber:   tx.PaymentNumber,
		RecipientNumber: tx.RecipientNumber,
		TransactionType: string(tx.TransactionType),
		Status:          string(tx.Status),
		CreatedAt:       tx.CreatedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		UserID:          model.UserID,
		PackageName:     model.PackageName,
		PackageType:     model.PackageType,
		Amount:          model.Amount,
		PaymentNumber:   model.PaymentNumber,
		RecipientNumber: model.RecipientNumber,
		TransactionType: domain.TransactionType(model.TransactionType),
		Status:          domain.TransactionStatus(model.Status),
		CreatedAt:       model.CreatedAt,
	}
}
