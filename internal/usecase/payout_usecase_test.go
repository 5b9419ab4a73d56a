package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPayoutUsecase(db *gorm.DB) *DefaultPayoutUsecase {
	return NewDefaultPayoutUsecase(
		repository.NewDefaultPayoutRepository(db),
		repository.NewDefaultPartnerRepository(db),
		nil, nil, nil,
	)
}

func TestProcessPartner(t *testing.T) {
	db := newTestDB(t)
	partner := seedPartner(t, db, "ABCD1234", 42, 100)

	uc := newTestPayoutUsecase(db)

	payout, err := uc.ProcessPartner(testCtx, partner.ID)
	require.NoError(t, err)
	require.Equal(t, 42.0, payout.Amount)
	require.Equal(t, domain.PayoutStatusPaid, payout.Status)
	require.NotNil(t, payout.PaidAt)

	requireBalances(t, db, partner.ID, 0, 142)

	var count int64
	require.NoError(t, db.Model(&models.PayoutModel{}).Where("partner_id = ?", partner.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProcessPartnerNothingPending(t *testing.T) {
	db := newTestDB(t)
	partner := seedPartner(t, db, "ABCD1234", 0, 100)

	uc := newTestPayoutUsecase(db)

	_, err := uc.ProcessPartner(testCtx, partner.ID)
	require.ErrorIs(t, err, domain.ErrNothingToSettle)

	requireBalances(t, db, partner.ID, 0, 100)

	// No payout record may exist for a partner that settled nothing.
	var count int64
	require.NoError(t, db.Model(&models.PayoutModel{}).Where("partner_id = ?", partner.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestProcessPartnerUnknown(t *testing.T) {
	db := newTestDB(t)

	uc := newTestPayoutUsecase(db)

	_, err := uc.ProcessPartner(testCtx, uuid.New().String())
	require.ErrorIs(t, err, domain.ErrPartnerNotFound)
}

func TestProcessPartnerTwiceSettlesOnce(t *testing.T) {
	db := newTestDB(t)
	partner := seedPartner(t, db, "ABCD1234", 30, 0)

	uc := newTestPayoutUsecase(db)

	_, err := uc.ProcessPartner(testCtx, partner.ID)
	require.NoError(t, err)

	_, err = uc.ProcessPartner(testCtx, partner.ID)
	require.ErrorIs(t, err, domain.ErrNothingToSettle)

	requireBalances(t, db, partner.ID, 0, 30)
}

func TestProcessAll(t *testing.T) {
	db := newTestDB(t)
	partnerA := seedPartner(t, db, "AAAA1111", 30, 0)
	partnerB := seedPartner(t, db, "BBBB2222", 0, 10)
	partnerC := seedPartner(t, db, "CCCC3333", 50, 5)

	uc := newTestPayoutUsecase(db)

	result, err := uc.ProcessAll(testCtx)
	require.NoError(t, err)
	require.Equal(t, 2, result.Processed)
	require.Equal(t, 0, result.Failed)
	require.Len(t, result.Entries, 2)

	// Highest pending amount is settled first.
	require.Equal(t, partnerC.ID, result.Entries[0].PartnerID)
	require.Equal(t, 50.0, result.Entries[0].Amount)
	require.Equal(t, partnerA.ID, result.Entries[1].PartnerID)
	require.Equal(t, 30.0, result.Entries[1].Amount)

	requireBalances(t, db, partnerA.ID, 0, 30)
	requireBalances(t, db, partnerB.ID, 0, 10)
	requireBalances(t, db, partnerC.ID, 0, 55)

	// The zero-pending partner got no payout record.
	var count int64
	require.NoError(t, db.Model(&models.PayoutModel{}).Where("partner_id = ?", partnerB.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestProcessAllEmpty(t *testing.T) {
	db := newTestDB(t)
	seedPartner(t, db, "ABCD1234", 0, 0)

	uc := newTestPayoutUsecase(db)

	result, err := uc.ProcessAll(testCtx)
	require.NoError(t, err)
	require.Equal(t, 0, result.Processed)
	require.Empty(t, result.Entries)
}

func TestListPayable(t *testing.T) {
	db := newTestDB(t)
	seedPartner(t, db, "AAAA1111", 30, 0)
	seedPartner(t, db, "BBBB2222", 0, 10)
	seedPartner(t, db, "CCCC3333", 50, 5)

	uc := newTestPayoutUsecase(db)

	payable, err := uc.ListPayable(testCtx)
	require.NoError(t, err)
	require.Len(t, payable, 2)
	require.Equal(t, "CCCC3333", payable[0].ReferralCode)
	require.Equal(t, "AAAA1111", payable[1].ReferralCode)
}
