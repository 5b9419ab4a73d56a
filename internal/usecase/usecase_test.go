package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Use a per-test in-memory database to avoid cross-test interference.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ProfileModel{},
		&models.PartnerModel{},
		&models.ReferralModel{},
		&models.PayoutModel{},
		&models.PurchaseModel{},
		&models.TransactionModel{},
		&models.UserRoleModel{},
	))
	return db
}

func seedPartner(t *testing.T, db *gorm.DB, code string, pending, earnings float64) *models.PartnerModel {
	t.Helper()
	partner := &models.PartnerModel{
		ID:            uuid.New().String(),
		UserID:        uuid.New().String(),
		ReferralCode:  code,
		PendingAmount: pending,
		TotalEarnings: earnings,
	}
	require.NoError(t, db.Create(partner).Error)
	return partner
}

func seedLead(t *testing.T, db *gorm.DB, partnerID, customerID string) *models.ReferralModel {
	t.Helper()
	referral := &models.ReferralModel{
		ID:         uuid.New().String(),
		PartnerID:  partnerID,
		CustomerID: customerID,
		Status:     "lead",
	}
	require.NoError(t, db.Create(referral).Error)
	return referral
}

func newTestReferralUsecase(db *gorm.DB, commission float64) *DefaultReferralUsecase {
	return NewDefaultReferralUsecase(
		repository.NewDefaultReferralRepository(db),
		repository.NewDefaultPartnerRepository(db),
		commission,
		nil, nil, nil,
	)
}

func requireBalances(t *testing.T, db *gorm.DB, partnerID string, pending, earnings float64) {
	t.Helper()
	var partner models.PartnerModel
	require.NoError(t, db.First(&partner, "id = ?", partnerID).Error)
	require.Equal(t, pending, partner.PendingAmount)
	require.Equal(t, earnings, partner.TotalEarnings)
	require.GreaterOrEqual(t, partner.PendingAmount, 0.0)
	require.GreaterOrEqual(t, partner.TotalEarnings, 0.0)
}

var testCtx = context.Background()
