package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	addPeriodHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/add_period"
	computePriceHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/compute_price"
	createHousingHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/create_housing"
	createPriceCategoryHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/create_price_category"
	createSeasonHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/create_season"
	deletePeriodHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/delete_period"
	deletePriceCategoryHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/delete_price_category"
	deleteSeasonHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/delete_season"
	getHousingHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/get_housing"
	getPeriodHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/get_period"
	getPriceCategoryHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/get_price_category"
	getSeasonHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/get_season"
	listHousingsHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/list_housings"
	listPeriodsHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/list_periods"
	listPriceCategoriesHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/list_price_categories"
	listSeasonsHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/list_seasons"
	setBasePriceHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/set_base_price"
	updatePeriodHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/update_period"
	updatePriceCategoryHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/update_price_category"
	updateSeasonHandler "github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers/update_season"
	"github.com/m04kA/SMC-SeasonPricingService/internal/api/middleware"
	"github.com/m04kA/SMC-SeasonPricingService/internal/config"
	housingsService "github.com/m04kA/SMC-SeasonPricingService/internal/service/housings"
	periodsService "github.com/m04kA/SMC-SeasonPricingService/internal/service/periods"
	priceCategoriesService "github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories"
	seasonsService "github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons"
	addPeriodUC "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/add_period"
	computePriceUC "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/compute_price"
	updatePeriodUC "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/update_period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v, ok := os.LookupEnv("SMC_CONFIG"); ok {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SeasonPricingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// "Сегодня" для проверки даты заезда считается в этом часовом поясе
	location, err := cfg.Pricing.Location()
	if err != nil {
		log.Fatal("Invalid pricing timezone: %v", err)
	}

	// Открываем хранилище
	store, err := openStorage(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Инициализируем сервисы
	housingSvc := housingsService.NewService(store.housings, log)
	seasonSvc := seasonsService.NewService(store.seasons, store.periods, store.housings, store.txManager, log)
	periodSvc := periodsService.NewService(store.periods, store.housings, log)
	priceCategorySvc := priceCategoriesService.NewService(store.priceCategories, store.housings, log)

	// Инициализируем use cases
	addPeriodUseCase := addPeriodUC.NewUseCase(
		store.seasons,
		store.periods,
		store.housings,
		store.txManager,
		metricsCollector,
		log,
	)
	updatePeriodUseCase := updatePeriodUC.NewUseCase(
		store.seasons,
		store.periods,
		store.housings,
		store.txManager,
		metricsCollector,
		log,
	)
	computePriceUseCase := computePriceUC.NewUseCase(
		store.housings,
		store.seasons,
		store.periods,
		store.txManager,
		metricsCollector,
		log,
	).WithTimeProvider(&computePriceUC.RealTimeProvider{Location: location}).
		WithMaxStayNights(cfg.Pricing.MaxStayNights)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Жилье ---
	api.HandleFunc("/housings", createHousingHandler.NewHandler(housingSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/housings", listHousingsHandler.NewHandler(housingSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/housings/{housingId}", getHousingHandler.NewHandler(housingSvc, log).Handle).Methods(http.MethodGet)

	// --- Сезоны ---
	api.HandleFunc("/housings/{housingId}/seasons",
		listSeasonsHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/housings/{housingId}/seasons",
		createSeasonHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/seasons/{seasonId}", getSeasonHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/seasons/{seasonId}", updateSeasonHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/seasons/{seasonId}", deleteSeasonHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodDelete)
	api.HandleFunc("/seasons/{seasonId}/base-price",
		setBasePriceHandler.NewHandler(seasonSvc, log).Handle).Methods(http.MethodPut)

	// --- Периоды ---
	api.HandleFunc("/seasons/{seasonId}/periods",
		addPeriodHandler.NewHandler(addPeriodUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/housings/{housingId}/periods",
		listPeriodsHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods/{periodId}", getPeriodHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods/{periodId}",
		updatePeriodHandler.NewHandler(updatePeriodUseCase, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/periods/{periodId}", deletePeriodHandler.NewHandler(periodSvc, log).Handle).Methods(http.MethodDelete)

	// --- Расчет стоимости ---
	api.HandleFunc("/housings/{housingId}/price",
		computePriceHandler.NewHandler(computePriceUseCase, log).Handle).Methods(http.MethodGet)

	// --- Ценовые категории ---
	api.HandleFunc("/housings/{housingId}/price-categories",
		listPriceCategoriesHandler.NewHandler(priceCategorySvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/housings/{housingId}/price-categories",
		createPriceCategoryHandler.NewHandler(priceCategorySvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/price-categories/{categoryId}",
		getPriceCategoryHandler.NewHandler(priceCategorySvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/price-categories/{categoryId}",
		updatePriceCategoryHandler.NewHandler(priceCategorySvc, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/price-categories/{categoryId}",
		deletePriceCategoryHandler.NewHandler(priceCategorySvc, log).Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
