package mappers

import (
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
)

func ToDomainProfile(model *models.ProfileModel) *domain.Profile {
	return &domain.Profile{
		ID:          model.ID,
		Email:       model.Email,
		FullName:    model.FullName,
		PhoneNumber: model.PhoneNumber,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
