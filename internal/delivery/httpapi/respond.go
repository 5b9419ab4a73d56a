package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/domain"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPartnerNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrNoLeadReferral):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNothingToSettle),
		errors.Is(err, domain.ErrAlreadyReferred):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownPackage),
		errors.Is(err, domain.ErrInvalidPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
