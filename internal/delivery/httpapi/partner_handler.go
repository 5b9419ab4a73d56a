package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/delivery/httpapi/middleware"
	"github.com/msmarket/market-service/internal/domain"
)

type PartnerHandler struct {
	partnerUsecase  domain.PartnerUsecase
	referralUsecase domain.ReferralUsecase
}

func NewPartnerHandler(partnerUsecase domain.PartnerUsecase, referralUsecase domain.ReferralUsecase) *PartnerHandler {
	return &PartnerHandler{
		partnerUsecase:  partnerUsecase,
		referralUsecase: referralUsecase,
	}
}

func (h *PartnerHandler) Register(c *gin.Context) {
	partner, err := h.partnerUsecase.RegisterPartner(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"partner_id":    partner.ID,
		"referral_code": partner.ReferralCode,
	})
}

func (h *PartnerHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.partnerUsecase.Dashboard(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *PartnerHandler) Leads(c *gin.Context) {
	leads, err := h.partnerUsecase.Leads(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (h *PartnerHandler) Payouts(c *gin.Context) {
	payouts, err := h.partnerUsecase.Payouts(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

func (h *PartnerHandler) WeeklyReports(c *gin.Context) {
	reports, err := h.partnerUsecase.WeeklyReports(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *PartnerHandler) Leaderboard(c *gin.Context) {
	leaderboard, err := h.partnerUsecase.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}

type registerLeadRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

// RegisterLead attributes the signed-in customer to a partner's referral
// code, typically right after signup.
func (h *PartnerHandler) RegisterLead(c *gin.Context) {
	var req registerLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	referral, err := h.referralUsecase.RegisterLead(c.Request.Context(), req.ReferralCode, c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"referral_id": referral.ID,
		"status":      referral.Status,
	})
}
