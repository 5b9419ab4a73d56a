package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:         model.ID,
		PartnerID:  model.PartnerID,
		Amount:     model.Amount,
		WeekEnding: model.WeekEnding,
		Status:     domain.PayoutStatus(model.Status),
		PaidAt:     model.PaidAt,
		CreatedAt:  model.CreatedAt,
	}
}
