package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farecast-service/internal/infrastructure/cache"
	"farecast-service/internal/infrastructure/config"
	"farecast-service/internal/infrastructure/oauth"
	"farecast-service/internal/infrastructure/persistence"
	"farecast-service/internal/interface/calendar"
	"farecast-service/internal/interface/httpapi"
	"farecast-service/internal/interface/predictor"
	"farecast-service/internal/interface/repository"
	"farecast-service/internal/usecase"
	"farecast-service/pkg/logger"
	"farecast-service/pkg/metrics"

	"farecast-service/internal/domain/entity"
	domainrepo "farecast-service/internal/domain/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Farecast Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the historical fare dataset; the service cannot serve without it
	dataset, err := repository.LoadDataset(cfg.DatasetPath, log)
	if err != nil {
		log.Fatal("Failed to load dataset", "path", cfg.DatasetPath, "error", err)
	}

	// Set up the regression models; an unreachable model is a config defect
	basePredictor := predictor.NewRESTPredictor(cfg.ModelServerURL, cfg.BaseModelName, cfg.ModelTimeout)
	holidayPredictor := predictor.NewRESTPredictor(cfg.ModelServerURL, cfg.HolidayModelName, cfg.ModelTimeout)

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.ModelTimeout)
	defer pingCancel()
	if err := basePredictor.Ping(pingCtx); err != nil {
		log.Fatal("Base fare model unavailable", "error", err)
	}
	if err := holidayPredictor.Ping(pingCtx); err != nil {
		log.Fatal("Holiday fare model unavailable", "error", err)
	}

	// Fetch the holiday calendar once; failures degrade to an empty map
	holidays := loadHolidays(ctx, cfg, log)

	recommenderOpts := []usecase.Option{
		usecase.WithMetrics(metrics.NewMetrics("farecast")),
	}

	// Airport metadata (autocomplete, display codes); optional collaborator
	var airportRepo domainrepo.AirportRepository
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Error("Failed to connect to PostgreSQL, airport metadata disabled", "error", err)
	} else {
		airportRepo = repository.NewGormAirportRepository(gormDB)
		recommenderOpts = append(recommenderOpts, usecase.WithAirportRepository(airportRepo))
	}

	// Query log (retraining audit); optional collaborator
	var mongoClient *mongo.Client
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Error("Failed to connect to MongoDB, query logging disabled", "error", err)
		mongoClient = nil
	} else {
		recommenderOpts = append(recommenderOpts, usecase.WithQueryLog(repository.NewMongoQueryLogRepository(db)))
	}

	// Facet cache
	facetCache := cache.NewRedisFacetCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.FacetCacheTTL)
	recommenderOpts = append(recommenderOpts, usecase.WithFacetCache(facetCache))

	recommender := usecase.NewFareRecommender(dataset, basePredictor, holidayPredictor, holidays, log, recommenderOpts...)

	// Set up HTTP server
	router := gin.New()
	router.Use(gin.Recovery())

	handler := httpapi.NewFareHandler(recommender, airportRepo, log)
	handler.Register(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Farecast Service stopped")
}

// loadHolidays builds the holiday map from the Google Calendar feed. Missing
// credentials or a fetch failure leave holiday pricing off for this process.
func loadHolidays(ctx context.Context, cfg *config.Config, log logger.Logger) entity.HolidayMap {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" {
		log.Warn("Google Calendar credentials not configured, holiday pricing disabled")
		return entity.HolidayMap{}
	}

	calendarOAuth := oauth.NewCalendarOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken, log)
	tokenSource := calendarOAuth.GetTokenSource(ctx)

	holidayService, err := calendar.NewHolidayService(ctx, tokenSource, cfg.HolidayCalendarID, log)
	if err != nil {
		log.Warn("Failed to create holiday service, holiday pricing disabled", "error", err)
		return entity.HolidayMap{}
	}

	fetchCtx, fetchCancel := context.WithTimeout(ctx, cfg.HolidayFetchTimeout)
	defer fetchCancel()
	return calendar.BuildHolidayMap(fetchCtx, holidayService, cfg.HolidayWindowDays, log)
}
