package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/delivery/httpapi/middleware"
	"github.com/msmarket/market-service/internal/usecase"
	checkoutdto "github.com/msmarket/market-service/internal/usecase/dto/checkout"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUsecase
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

type checkoutRequest struct {
	PackageType     string `json:"package_type" binding:"required"`
	PackageName     string `json:"package_name" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	PaymentNumber   string `json:"payment_number"`
	CardNumber      string `json:"card_number"`
	RecipientNumber string `json:"recipient_number"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.checkoutUsecase.Checkout(c.Request.Context(), &checkoutdto.CheckoutInput{
		UserID:          c.GetString(middleware.UserIDKey),
		PackageType:     req.PackageType,
		PackageName:     req.PackageName,
		PaymentMethod:   req.PaymentMethod,
		PaymentNumber:   req.PaymentNumber,
		CardNumber:      req.CardNumber,
		RecipientNumber: req.RecipientNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output)
}
