package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	luhn "github.com/EClaesson/go-luhn"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/kafka"
	"github.com/msmarket/market-service/internal/infrastructure/metrics"
	checkoutdto "github.com/msmarket/market-service/internal/usecase/dto/checkout"
)

var phonePattern = regexp.MustCompile(`^0[0-9]{9}$`)

type CheckoutUsecase interface {
	Checkout(ctx context.Context, input *checkoutdto.CheckoutInput) (*checkoutdto.CheckoutOutput, error)
}

type DefaultCheckoutUsecase struct {
	Catalog         domain.CatalogRepository
	PurchaseRepo    domain.PurchaseRepository
	TransactionRepo domain.TransactionRepository
	ReferralUsecase domain.ReferralUsecase
	Events          EventPublisher
	Metrics         *metrics.MarketMetrics
}

func NewDefaultCheckoutUsecase(
	catalogRepo domain.CatalogRepository,
	purchaseRepo domain.PurchaseRepository,
	transactionRepo domain.TransactionRepository,
	referralUsecase domain.ReferralUsecase,
	events EventPublisher,
	marketMetrics *metrics.MarketMetrics,
) *DefaultCheckoutUsecase {
	return &DefaultCheckoutUsecase{
		Catalog:         catalogRepo,
		PurchaseRepo:    purchaseRepo,
		TransactionRepo: transactionRepo,
		ReferralUsecase: referralUsecase,
		Events:          events,
		Metrics:         marketMetrics,
	}
}

// Checkout completes a purchase: the package is priced from the catalog,
// payment details are validated, purchase and transaction rows are written,
// and the buyer's referral (if any) is converted.
func (uc *DefaultCheckoutUsecase) Checkout(ctx context.Context, input *checkoutdto.CheckoutInput) (*checkoutdto.CheckoutOutput, error) {
	pkg, err := uc.Catalog.FindPackage(input.PackageType, input.PackageName)
	if err != nil {
		uc.recordError("unknown_package")
		return nil, err
	}

	if err := validatePayment(input); err != nil {
		uc.recordError("invalid_payment")
		return nil, err
	}

	now := time.Now()
	purchase := &domain.Purchase{
		UserID:         input.UserID,
		PackageName:    pkg.Name,
		PackageType:    pkg.Type,
		Amount:         pkg.Price,
		InitialValue:   pkg.Name,
		RemainingValue: pkg.Name,
		Status:         domain.PurchaseStatusActive,
		ExpiryDate:     now.Add(pkg.ValidFor),
	}
	if err := uc.PurchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		uc.recordError("purchase_write")
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	transactionType := domain.TransactionTypePurchase
	var recipientNumber *string
	if input.RecipientNumber != "" {
		transactionType = domain.TransactionTypeGift
		recipient := input.RecipientNumber
		recipientNumber = &recipient
	}

	transaction := &domain.Transaction{
		UserID:          input.UserID,
		PackageName:     pkg.Name,
		PackageType:     pkg.Type,
		Amount:          pkg.Price,
		PaymentNumber:   input.PaymentNumber,
		RecipientNumber: recipientNumber,
		TransactionType: transactionType,
		Status:          domain.TransactionStatusCompleted,
	}
	if err := uc.TransactionRepo.CreateTransaction(ctx, transaction); err != nil {
		uc.recordError("transaction_write")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// A buyer without a lead referral is the common case, not an error.
	converted := false
	if _, err := uc.ReferralUsecase.ConvertLead(ctx, input.UserID); err != nil {
		if !errors.Is(err, domain.ErrNoLeadReferral) {
			uc.recordError("conversion_write")
			return nil, fmt.Errorf("failed to convert referral: %w", err)
		}
	} else {
		converted = true
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPurchase(pkg.Type, input.PaymentMethod, pkg.Price)
	}

	if uc.Events != nil {
		if err := uc.Events.PublishPurchase(kafka.PurchaseEvent{
			PurchaseID:  purchase.ID,
			UserID:      input.UserID,
			PackageName: pkg.Name,
			PackageType: pkg.Type,
			Amount:      pkg.Price,
			Timestamp:   now,
		}); err != nil {
			slog.Error("failed to publish purchase event", "purchase_id", purchase.ID, "error", err.Error())
		}
	}

	return &checkoutdto.CheckoutOutput{
		PurchaseID:    purchase.ID,
		TransactionID: transaction.ID,
		PackageName:   pkg.Name,
		Amount:        pkg.Price,
		Converted:     converted,
	}, nil
}

func validatePayment(input *checkoutdto.CheckoutInput) error {
	switch input.PaymentMethod {
	case checkoutdto.PaymentMethodMpesa:
		if !phonePattern.MatchString(input.PaymentNumber) {
			return domain.ErrInvalidPayment
		}
	case checkoutdto.PaymentMethodCard:
		valid, err := luhn.IsValid(input.CardNumber)
		if err != nil || !valid {
			return domain.ErrInvalidPayment
		}
	default:
		return domain.ErrInvalidPayment
	}

	return nil
}

func (uc *DefaultCheckoutUsecase) recordError(errorType string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordCheckoutError(errorType)
	}
}
