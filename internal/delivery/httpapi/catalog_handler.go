package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/usecase"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

func (h *CatalogHandler) ListBundles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bundles": h.catalogUsecase.ListDataBundles()})
}

func (h *CatalogHandler) PopularBundles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bundles": h.catalogUsecase.PopularDataBundles()})
}

func (h *CatalogHandler) GiftCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogUsecase.GiftCategories()})
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.catalogUsecase.ListServices()})
}
