package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToGORMPurchase(purchase *domain.Purchase) *models.PurchaseModel {
	return &models.PurchaseModel{
		ID:             purchase.ID,
		UserID:         purchase.UserID,
		PackageName:    purchase.PackageName,
		PackageType:    purchase.PackageType,
		Amount:         purchase.Amount,
		InitialValue:   purchase.InitialValue,
		RemainingValue: purchase.RemainingValue,
		Status:         string(purchase.Status),
		ExpiryDate:     purchase.ExpiryDate,
		CreatedAt:      purchase.CreatedAt,
	}
}

func ToDomainPurchase(model *models.PurchaseModel) *domain.Purchase {
	return &domain.Purchase{
		ID:             model.ID,
		UserID:         model.UserID,
		PackageName:    model.PackageName,
		PackageType:    model.PackageType,
		Amount:         model.Amount,
		InitialValue:   model.InitialValue,
		RemainingValue: model.RemainingValue,
		Status:         domain.PurchaseStatus(model.Status),
		ExpiryDate:     model.ExpiryDate,
		CreatedAt:      model.CreatedAt,
	}
}
