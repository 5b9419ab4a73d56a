package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:          referral.ID,
		PartnerID:   referral.PartnerID,
		CustomerID:  referral.CustomerID,
		Status:      string(referral.Status),
		CreatedAt:   referral.CreatedAt,
		ConvertedAt: referral.ConvertedAt,
	}
}

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID:          model.ID,
		PartnerID:   model.PartnerID,
		CustomerID:  model.CustomerID,
		Status:      domain.ReferralStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ConvertedAt: model.ConvertedAt,
	}
}
