package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/catalog"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/repository"
	checkoutdto "github.com/msmarket/market-service/internal/usecase/dto/checkout"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCheckoutUsecase(db *gorm.DB) *DefaultCheckoutUsecase {
	return NewDefaultCheckoutUsecase(
		catalog.NewStaticCatalog(),
		repository.NewDefaultPurchaseRepository(db),
		repository.NewDefaultTransactionRepository(db),
		newTestReferralUsecase(db, 1),
		nil, nil,
	)
}

func TestCheckout(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New().String()

	uc := newTestCheckoutUsecase(db)

	out, err := uc.Checkout(testCtx, &checkoutdto.CheckoutInput{
		UserID:        userID,
		PackageType:   domain.PackageTypeData,
		PackageName:   "2GB",
		PaymentMethod: checkoutdto.PaymentMethodMpesa,
		PaymentNumber: "0712345678",
	})
	require.NoError(t, err)
	require.Equal(t, "2GB", out.PackageName)
	require.Equal(t, 100.0, out.Amount)
	require.False(t, out.Converted)

	var purchase models.PurchaseModel
	require.NoError(t, db.First(&purchase, "id = ?", out.PurchaseID).Error)
	require.Equal(t, userID, purchase.UserID)
	require.Equal(t, 100.0, purchase.Amount)
	require.Equal(t, "active", purchase.Status)
	require.False(t, purchase.ExpiryDate.IsZero())

	var transaction models.TransactionModel
	require.NoError(t, db.First(&transaction, "id = ?", out.TransactionID).Error)
	require.Equal(t, "purchase", transaction.TransactionType)
	require.Equal(t, "completed", transaction.Status)
	require.Nil(t, transaction.RecipientNumber)
}

func TestCheckoutPricesFromCatalog(t *testing.T) {
	db := newTestDB(t)

	uc := newTestCheckoutUsecase(db)

	// Client-side amounts are ignored; the catalog price is authoritative.
	out, err := uc.Checkout(testCtx, &checkoutdto.CheckoutInput{
		UserID:        uuid.New().String(),
		PackageType:   domain.PackageTypeSMS,
		PackageName:   "1000 SMS",
		PaymentMethod: checkoutdto.PaymentMethodMpesa,
		PaymentNumber: "0712345678",
	})
	require.NoError(t, err)
	require.Equal(t, 30.0, out.Amount)
}

func TestCheckoutConvertsLead(t *testing.T) {
	db := newTestDB(t)
	partner := seedPartner(t, db, "ABCD1234", 0, 0)
	customerID := uuid.New().String()
	seedLead(t, db, partner.ID, customerID)

	uc := newTestCheckoutUsecase(db)

	input := &checkoutdto.CheckoutInput{
		UserID:        customerID,
		PackageType:   domain.PackageTypeData,
		PackageName:   "1.25GB",
		PaymentMethod: checkoutdto.PaymentMethodMpesa,
		PaymentNumber: "0712345678",
	}

	out, err := uc.Checkout(testCtx, input)
	require.NoError(t, err)
	require.True(t, out.Converted)
	requireBalances(t, db, partner.ID, 1, 0)

	// A repeat purchase does not credit the partner again.
	out, err = uc.Checkout(testCtx, input)
	require.NoError(t, err)
	require.False(t, out.Converted)
	requireBalances(t, db, partner.ID, 1, 0)
}

func TestCheckoutGift(t *testing.T) {
	db := newTestDB(t)

	uc := newTestCheckoutUsecase(db)

	out, err := uc.Checkout(testCtx, &checkoutdto.CheckoutInput{
		UserID:          uuid.New().String(),
		PackageType:     domain.PackageTypeMinutes,
		PackageName:     "50 Minutes",
		PaymentMethod:   checkoutdto.PaymentMethodMpesa,
		PaymentNumber:   "0712345678",
		RecipientNumber: "0798765432",
	})
	require.NoError(t, err)

	var transaction models.TransactionModel
	require.NoError(t, db.First(&transaction, "id = ?", out.TransactionID).Error)
	require.Equal(t, "gift", transaction.TransactionType)
	require.NotNil(t, transaction.RecipientNumber)
	require.Equal(t, "0798765432", *transaction.RecipientNumber)
}

func TestCheckoutCardPayment(t *testing.T) {
	db := newTestDB(t)

	uc := newTestCheckoutUsecase(db)

	_, err := uc.Checkout(testCtx, &checkoutdto.CheckoutInput{
		UserID:        uuid.New().String(),
		PackageType:   domain.PackageTypeData,
		PackageName:   "500MB",
		PaymentMethod: checkoutdto.PaymentMethodCard,
		CardNumber:    "4111111111111111",
	})
	require.NoError(t, err)
}

func TestCheckoutUnknownPackage(t *testing.T) {
	db := newTestDB(t)

	uc := newTestCheckoutUsecase(db)

	_, err := uc.Checkout(testCtx, &checkoutdto.CheckoutInput{
		UserID:        uuid.New().String(),
		PackageType:   domain.PackageTypeData,
		PackageName:   "999GB",
		PaymentMethod: checkoutdto.PaymentMethodMpesa,
		PaymentNumber: "0712345678",
	})
	require.ErrorIs(t, err, domain.ErrUnknownPackage)

	var count int64
	require.NoError(t, db.Model(&models.PurchaseModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCheckoutInvalidPayment(t *testing.T) {
	db := newTestDB(t)

	uc := newTestCheckoutUsecase(db)

	tests := []struct {
		name  string
		input checkoutdto.CheckoutInput
	}{
		{
			name: "short phone",
			input: checkoutdto.CheckoutInput{
				PaymentMethod: checkoutdto.PaymentMethodMpesa,
				PaymentNumber: "07123",
			},
		},
		{
			name: "phone without leading zero",
			input: checkoutdto.CheckoutInput{
				PaymentMethod: checkoutdto.PaymentMethodMpesa,
				PaymentNumber: "7123456789",
			},
		},
		{
			name: "card failing checksum",
			input: checkoutdto.CheckoutInput{
				PaymentMethod: checkoutdto.PaymentMethodCard,
				CardNumber:    "4111111111111112",
			},
		},
		{
			name: "unknown method",
			input: checkoutdto.CheckoutInput{
				PaymentMethod: "paypal",
				PaymentNumber: "0712345678",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			input.UserID = uuid.New().String()
			input.PackageType = domain.PackageTypeData
			input.PackageName = "2GB"

			_, err := uc.Checkout(testCtx, &input)
			require.ErrorIs(t, err, domain.ErrInvalidPayment)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.PurchaseModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
