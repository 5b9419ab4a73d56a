package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/msmarket/market-service/internal/delivery/httpapi/middleware"
	"github.com/msmarket/market-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Catalog  *CatalogHandler
	Checkout *CheckoutHandler
	Account  *AccountHandler
	Partner  *PartnerHandler
	Admin    *AdminHandler
}

func NewRouter(jwtSecret string, roleRepo domain.UserRoleRepository, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	catalog := api.Group("/catalog")
	{
		catalog.GET("/bundles", h.Catalog.ListBundles)
		catalog.GET("/bundles/popular", h.Catalog.PopularBundles)
		catalog.GET("/gifts", h.Catalog.GiftCategories)
		catalog.GET("/services", h.Catalog.ListServices)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(jwtSecret))
	{
		authed.POST("/checkout", h.Checkout.Checkout)
		authed.POST("/referrals", h.Partner.RegisterLead)

		account := authed.Group("/account")
		{
			account.GET("/profile", h.Account.GetProfile)
			account.PUT("/profile", h.Account.UpdateProfile)
			account.GET("/purchases", h.Account.ListPurchases)
			account.GET("/transactions", h.Account.ListTransactions)
		}

		partner := authed.Group("/partner")
		{
			partner.POST("", h.Partner.Register)
			partner.GET("/dashboard", h.Partner.Dashboard)
			partner.GET("/leads", h.Partner.Leads)
			partner.GET("/payouts", h.Partner.Payouts)
			partner.GET("/reports", h.Partner.WeeklyReports)
			partner.GET("/leaderboard", h.Partner.Leaderboard)
		}

		admin := authed.Group("/admin")
		admin.Use(middleware.AdminOnly(roleRepo))
		{
			admin.GET("/overview", h.Admin.Overview)
			admin.GET("/partners", h.Admin.Partners)
			admin.GET("/payouts/pending", h.Admin.PendingPayouts)
			admin.POST("/payouts/process", h.Admin.ProcessAllPayouts)
			admin.POST("/payouts/process/:partnerID", h.Admin.ProcessPartnerPayout)
		}
	}

	return r
}
