package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/msmarket/market-service/internal/catalog"
	"github.com/msmarket/market-service/internal/config"
	"github.com/msmarket/market-service/internal/delivery/httpapi"
	"github.com/msmarket/market-service/internal/infrastructure/kafka"
	"github.com/msmarket/market-service/internal/infrastructure/logger"
	"github.com/msmarket/market-service/internal/infrastructure/metrics"
	"github.com/msmarket/market-service/internal/infrastructure/migrate"
	"github.com/msmarket/market-service/internal/infrastructure/postgres"
	"github.com/msmarket/market-service/internal/infrastructure/postgres/repository"
	"github.com/msmarket/market-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	if migrationPath := os.Getenv("MARKET_MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	marketMetrics := metrics.NewMarketMetrics()
	auditLog := logger.NewPGBookkeepingEventLogger(db)

	// Init repositories
	partnerRepo := repository.NewDefaultPartnerRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	purchaseRepo := repository.NewDefaultPurchaseRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	profileRepo := repository.NewDefaultProfileRepository(db)
	userRoleRepo := repository.NewDefaultUserRoleRepository(db)
	catalogRepo := catalog.NewStaticCatalog()

	// Init usecases
	referralUsecase := usecase.NewDefaultReferralUsecase(
		referralRepo,
		partnerRepo,
		cfg.Referral.CommissionUnit,
		pub,
		marketMetrics,
		auditLog,
	)
	checkoutUsecase := usecase.NewDefaultCheckoutUsecase(
		catalogRepo,
		purchaseRepo,
		transactionRepo,
		referralUsecase,
		pub,
		marketMetrics,
	)
	payoutUsecase := usecase.NewDefaultPayoutUsecase(
		payoutRepo,
		partnerRepo,
		pub,
		marketMetrics,
		auditLog,
	)
	partnerUsecase := usecase.NewDefaultPartnerUsecase(
		partnerRepo,
		referralRepo,
		payoutRepo,
		profileRepo,
		cfg.Referral.CommissionUnit,
		cfg.Referral.LeaderboardLimit,
	)
	accountUsecase := usecase.NewDefaultAccountUsecase(profileRepo, purchaseRepo, transactionRepo)
	adminUsecase := usecase.NewDefaultAdminUsecase(partnerRepo, referralRepo)
	catalogUsecase := usecase.NewDefaultCatalogUsecase(catalogRepo)

	router := httpapi.NewRouter(cfg.JWT.Secret, userRoleRepo, httpapi.Handlers{
		Catalog:  httpapi.NewCatalogHandler(catalogUsecase),
		Checkout: httpapi.NewCheckoutHandler(checkoutUsecase),
		Account:  httpapi.NewAccountHandler(accountUsecase),
		Partner:  httpapi.NewPartnerHandler(partnerUsecase, referralUsecase),
		Admin:    httpapi.NewAdminHandler(adminUsecase, payoutUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.MarketConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogConfig.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if strings.ToLower(cfg.LogConfig.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
