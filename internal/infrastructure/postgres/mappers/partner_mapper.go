package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToGORMPartner(partner *domain.Partner) *models.PartnerModel {
	return &models.PartnerModel{
		ID:            partner.ID,
		UserID:        partner.UserID,
		ReferralCode:  partner.ReferralCode,
		PendingAmount: partner.PendingAmount,
		TotalEarnings: partner.TotalEarnings,
		CreatedAt:     partner.CreatedAt,
		UpdatedAt:     partner.UpdatedAt,
	}
}

func ToDomainPartner(model *models.PartnerModel) *domain.Partner {
	return &domain.Partner{
		ID:            model.ID,
		UserID:        model.UserID,
		ReferralCode:  model.ReferralCode,
		PendingAmount: model.PendingAmount,
		TotalEarnings: model.TotalEarnings,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
