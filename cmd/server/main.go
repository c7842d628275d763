package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fuelstation/backend/internal/application/catalog"
	membershipapp "github.com/fuelstation/backend/internal/application/membership"
	procurementapp "github.com/fuelstation/backend/internal/application/procurement"
	salesapp "github.com/fuelstation/backend/internal/application/sales"
	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/infrastructure/cache"
	"github.com/fuelstation/backend/internal/infrastructure/config"
	"github.com/fuelstation/backend/internal/infrastructure/logger"
	"github.com/fuelstation/backend/internal/infrastructure/persistence"
	"github.com/fuelstation/backend/internal/interfaces/http/handler"
	"github.com/fuelstation/backend/internal/interfaces/http/middleware"
	"github.com/fuelstation/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting fuel station backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Active-promotion cache: Redis when configured, in-process otherwise.
	var promotionCache membership.PromotionCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisPromotionCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cache.WithCacheLogger(log))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		promotionCache = redisCache
		log.Info("Redis promotion cache enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		promotionCache = cache.NewInMemoryPromotionCache()
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	dispenserRepo := persistence.NewGormDispenserRepository(db.DB)
	nozzleRepo := persistence.NewGormNozzleRepository(db.DB)
	tankRepo := persistence.NewGormTankRepository(db.DB)
	tankReadingRepo := persistence.NewGormTankReadingRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	shiftRepo := persistence.NewGormShiftRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	batchRepo := persistence.NewGormImportBatchRepository(db.DB)

	// Transaction scopes
	salesScope := persistence.NewGormSalesTransactionScope(db.DB)
	procurementScope := persistence.NewGormProcurementTransactionScope(db.DB)

	// Application services
	commitService := salesapp.NewCommitService(salesScope, log)
	shiftService := salesapp.NewShiftService(shiftRepo, transactionRepo)
	importService := procurementapp.NewImportService(batchRepo, procurementScope, log)
	profitService := procurementapp.NewProfitService(batchRepo, transactionRepo, log)
	stationService := stationapp.NewStationService(dispenserRepo, nozzleRepo, tankRepo, tankReadingRepo, log)
	productService := catalogapp.NewProductService(productRepo)
	memberService := membershipapp.NewMemberService(memberRepo)
	promotionService := membershipapp.NewPromotionService(promotionRepo, promotionCache, log)

	// HTTP handlers
	salesHandler := handler.NewSalesHandler(commitService, shiftService)
	procurementHandler := handler.NewProcurementHandler(importService, profitService)
	stationHandler := handler.NewStationHandler(stationService)
	catalogHandler := handler.NewCatalogHandler(productService)
	membershipHandler := handler.NewMembershipHandler(memberService, promotionService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(salesHandler).
		Register(procurementHandler).
		Register(stationHandler).
		Register(catalogHandler).
		Register(membershipHandler).
		Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
