package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/msmarket/market-service/internal/catalog"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/models"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/repository"
	"github.com/msmarket/market-service/internal/usecase"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	partnerRepo := repository.NewDefaultPartnerRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	purchaseRepo := repository.NewDefaultPurchaseRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	profileRepo := repository.NewDefaultProfileRepository(db)
	userRoleRepo := repository.NewDefaultUserRoleRepository(db)
	catalogRepo := catalog.NewStaticCatalog()

	referralUsecase := usecase.NewDefaultReferralUsecase(referralRepo, partnerRepo, 1, nil, nil, nil)
	checkoutUsecase := usecase.NewDefaultCheckoutUsecase(catalogRepo, purchaseRepo, transactionRepo, referralUsecase, nil, nil)
	payoutUsecase := usecase.NewDefaultPayoutUsecase(payoutRepo, partnerRepo, nil, nil, nil)
	partnerUsecase := usecase.NewDefaultPartnerUsecase(partnerRepo, referralRepo, payoutRepo, profileRepo, 1, 10)
	accountUsecase := usecase.NewDefaultAccountUsecase(profileRepo, purchaseRepo, transactionRepo)
	adminUsecase := usecase.NewDefaultAdminUsecase(partnerRepo, referralRepo)
	catalogUsecase := usecase.NewDefaultCatalogUsecase(catalogRepo)

	router := NewRouter(testJWTSecret, userRoleRepo, Handlers{
		Catalog:  NewCatalogHandler(catalogUsecase),
		Checkout: NewCheckoutHandler(checkoutUsecase),
		Account:  NewAccountHandler(accountUsecase),
		Partner:  NewPartnerHandler(partnerUsecase, referralUsecase),
		Admin:    NewAdminHandler(adminUsecase, payoutUsecase),
	})

	return &testServer{router: router, db: db}
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *testServer) seedPartner(t *testing.T, code string, pending, earnings float64) *models.PartnerModel {
	t.Helper()
	partner := &models.PartnerModel{
		ID:            uuid.New().String(),
		UserID:        uuid.New().String(),
		ReferralCode:  code,
		PendingAmount: pending,
		TotalEarnings: earnings,
	}
	require.NoError(t, s.db.Create(partner).Error)
	return partner
}

func (s *testServer) grantAdmin(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.UserRoleModel{
		ID:     uuid.New().String(),
		UserID: userID,
		Role:   "admin",
	}).Error)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/catalog/bundles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	bundles, ok := body["bundles"].([]interface{})
	require.True(t, ok)
	require.Len(t, bundles, 12)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/api/v1/partner/dashboard", tc.token, nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	s := newTestServer(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.New().String()})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/api/v1/partner/dashboard", signed, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRouteForbiddenForNonAdmin(t *testing.T) {
	s := newTestServer(t)

	token := signToken(t, uuid.New().String())
	rec := s.do(t, http.MethodGet, "/api/v1/admin/overview", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPartnerRegisterAndDashboard(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New().String()
	token := signToken(t, userID)

	rec := s.do(t, http.MethodPost, "/api/v1/partner", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body["referral_code"], 8)

	rec = s.do(t, http.MethodGet, "/api/v1/partner/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, 0.0, body["pending_amount"])
}

func TestPartnerDashboardNotFound(t *testing.T) {
	s := newTestServer(t)

	token := signToken(t, uuid.New().String())
	rec := s.do(t, http.MethodGet, "/api/v1/partner/dashboard", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterLeadEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedPartner(t, "ABCD1234", 0, 0)
	token := signToken(t, uuid.New().String())

	rec := s.do(t, http.MethodPost, "/api/v1/referrals", token, gin.H{"referral_code": "ABCD1234"})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "lead", body["status"])

	// A second attribution attempt for the same customer conflicts.
	rec = s.do(t, http.MethodPost, "/api/v1/referrals", token, gin.H{"referral_code": "ABCD1234"})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterLeadUnknownCodeEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := signToken(t, uuid.New().String())

	rec := s.do(t, http.MethodPost, "/api/v1/referrals", token, gin.H{"referral_code": "ZZZZ9999"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEndpoint(t *testing.T) {
	s := newTestServer(t)
	partner := s.seedPartner(t, "ABCD1234", 0, 0)
	customerID := uuid.New().String()
	require.NoError(t, s.db.Create(&models.ReferralModel{
		ID:         uuid.New().String(),
		PartnerID:  partner.ID,
		CustomerID: customerID,
		Status:     "lead",
	}).Error)

	token := signToken(t, customerID)
	rec := s.do(t, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"package_type":   "data",
		"package_name":   "2GB",
		"payment_method": "mpesa",
		"payment_number": "0712345678",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, 100.0, body["amount"])
	require.Equal(t, true, body["converted"])

	var stored models.PartnerModel
	require.NoError(t, s.db.First(&stored, "id = ?", partner.ID).Error)
	require.Equal(t, 1.0, stored.PendingAmount)
}

func TestCheckoutEndpointInvalidPayment(t *testing.T) {
	s := newTestServer(t)

	token := signToken(t, uuid.New().String())
	rec := s.do(t, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"package_type":   "data",
		"package_name":   "2GB",
		"payment_method": "mpesa",
		"payment_number": "12345",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckoutEndpointMissingFields(t *testing.T) {
	s := newTestServer(t)

	token := signToken(t, uuid.New().String())
	rec := s.do(t, http.MethodPost, "/api/v1/checkout", token, gin.H{"package_type": "data"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedPartner(t, "AAAA1111", 0, 500)
	s.seedPartner(t, "BBBB2222", 0, 1500)
	s.seedPartner(t, "CCCC3333", 0, 300)

	token := signToken(t, uuid.New().String())
	rec := s.do(t, http.MethodGet, "/api/v1/partner/leaderboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	entries, ok := body["leaderboard"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 3)

	first := entries[0].(map[string]interface{})
	require.Equal(t, 1.0, first["rank"])
	require.Equal(t, 1500.0, first["total_earnings"])
	require.Equal(t, "BBBB2222", first["referral_code"])
}

func TestAdminProcessPayouts(t *testing.T) {
	s := newTestServer(t)
	adminID := uuid.New().String()
	s.grantAdmin(t, adminID)
	partnerA := s.seedPartner(t, "AAAA1111", 30, 0)
	s.seedPartner(t, "BBBB2222", 0, 10)

	token := signToken(t, adminID)

	rec := s.do(t, http.MethodGet, "/api/v1/admin/payouts/pending", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body["partners"], 1)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/payouts/process", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, 1.0, body["processed"])
	require.Equal(t, 0.0, body["failed"])

	var stored models.PartnerModel
	require.NoError(t, s.db.First(&stored, "id = ?", partnerA.ID).Error)
	require.Equal(t, 0.0, stored.PendingAmount)
	require.Equal(t, 30.0, stored.TotalEarnings)

	// A second run has nothing to settle.
	rec = s.do(t, http.MethodPost, "/api/v1/admin/payouts/process", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, 0.0, body["processed"])
}

func TestAdminProcessSinglePartner(t *testing.T) {
	s := newTestServer(t)
	adminID := uuid.New().String()
	s.grantAdmin(t, adminID)
	partner := s.seedPartner(t, "AAAA1111", 42, 0)

	token := signToken(t, adminID)

	rec := s.do(t, http.MethodPost, "/api/v1/admin/payouts/process/"+partner.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Settling again conflicts: the pending balance is already zero.
	rec = s.do(t, http.MethodPost, "/api/v1/admin/payouts/process/"+partner.ID, token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestAccountProfile(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New().String()
	require.NoError(t, s.db.Create(&models.ProfileModel{
		ID:       userID,
		Email:    "buyer@example.com",
		FullName: "Test Buyer",
	}).Error)

	token := signToken(t, userID)
	rec := s.do(t, http.MethodGet, "/api/v1/account/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "buyer@example.com", body["email"])

	rec = s.do(t, http.MethodPut, "/api/v1/account/profile", token, gin.H{
		"full_name":    "Renamed Buyer",
		"phone_number": "0712345678",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.ProfileModel
	require.NoError(t, s.db.First(&stored, "id = ?", userID).Error)
	require.Equal(t, "Renamed Buyer", stored.FullName)
}
