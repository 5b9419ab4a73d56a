package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/delivery/httpapi/middleware"
	"github.com/msmarket/market-service/internal/usecase"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.accountUsecase.Profile(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           profile.ID,
		"email":        profile.Email,
		"full_name":    profile.FullName,
		"phone_number": profile.PhoneNumber,
	})
}

type updateProfileRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	if err := h.accountUsecase.UpdateProfile(c.Request.Context(), userID, req.FullName, req.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AccountHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.accountUsecase.Purchases(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (h *AccountHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.accountUsecase.Transactions(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
