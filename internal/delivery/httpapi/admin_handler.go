package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/msmarket/market-service/internal/usecase"
)

type AdminHandler struct {
	adminUsecase  usecase.AdminUsecase
	payoutUsecase domain.PayoutUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, payoutUsecase domain.PayoutUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase:  adminUsecase,
		payoutUsecase: payoutUsecase,
	}
}

func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.adminUsecase.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *AdminHandler) Partners(c *gin.Context) {
	partners, err := h.adminUsecase.Partners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *AdminHandler) PendingPayouts(c *gin.Context) {
	partners, err := h.payoutUsecase.ListPayable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *AdminHandler) ProcessAllPayouts(c *gin.Context) {
	result, err := h.payoutUsecase.ProcessAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ProcessPartnerPayout(c *gin.Context) {
	payout, err := h.payoutUsecase.ProcessPartner(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}
