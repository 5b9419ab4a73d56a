package usecase

import (
	"context"

	"github.com/msmarket/market-service/internal/domain"
)

type AccountUsecase interface {
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID, fullName, phoneNumber string) error
	Purchases(ctx context.Context, userID string) ([]*domain.Purchase, error)
	Transactions(ctx context.Context, userID string) ([]*domain.Transaction, error)
}

type DefaultAccountUsecase struct {
	ProfileRepo     domain.ProfileRepository
	PurchaseRepo    domain.PurchaseRepository
	TransactionRepo domain.TransactionRepository
}

func NewDefaultAccountUsecase(
	profileRepo domain.ProfileRepository,
	purchaseRepo domain.PurchaseRepository,
	transactionRepo domain.TransactionRepository,
) *DefaultAccountUsecase {
	return &DefaultAccountUsecase{
		ProfileRepo:     profileRepo,
		PurchaseRepo:    purchaseRepo,
		TransactionRepo: transactionRepo,
	}
}

func (uc *DefaultAccountUsecase) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.ProfileRepo.GetProfileByID(ctx, userID)
}

func (uc *DefaultAccountUsecase) UpdateProfile(ctx context.Context, userID, fullName, phoneNumber string) error {
	return uc.ProfileRepo.UpdateProfile(ctx, userID, fullName, phoneNumber)
}

func (uc *DefaultAccountUsecase) Purchases(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	return uc.PurchaseRepo.GetActivePurchasesByUserID(ctx, userID)
}

func (uc *DefaultAccountUsecase) Transactions(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	return uc.TransactionRepo.GetTransactionsByUserID(ctx, userID)
}
