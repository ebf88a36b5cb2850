package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "palmcafe/api/swagger" // swagger docs
	"palmcafe/internal/config"
	"palmcafe/internal/database"
	"palmcafe/internal/handler"
	"palmcafe/internal/logger"
	"palmcafe/internal/metrics"
	"palmcafe/internal/middleware"
	"palmcafe/internal/pdf"
	"palmcafe/internal/repository"
	"palmcafe/internal/service"
	"palmcafe/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Palm Cafe POS API
// @version         1.0
// @description     Invoices, tax and currency settings, and sales statistics for the Palm Cafe till.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger config is part of what failed to load
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.Database, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(ctx, db, cfg.Invoice.NumberBaseline); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DBName))

	// Order feed for POS screens
	wsHub := websocket.NewHub(log, cfg.HTTP.CORSAllowOrigins)
	go wsHub.Run(ctx)

	m := metrics.New(nil)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	settingRepo := repository.NewSettingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	sequencer := repository.NewInvoiceSequencer(db)
	statisticsRepo := repository.NewStatisticsRepository(db)

	content := pdf.DefaultContent()
	if cfg.Invoice.BusinessName != "" {
		content.BusinessName = cfg.Invoice.BusinessName
	}
	renderer := pdf.NewRenderer(pdf.Config{LogoPath: cfg.Invoice.LogoPath, Content: content}, log)

	taxService := service.NewTaxService(settingRepo, txManager, m, log)
	currencyService := service.NewCurrencyService(settingRepo, txManager, m, log)
	invoiceService := service.NewInvoiceService(service.InvoiceServiceParams{
		Invoices:    invoiceRepo,
		Sequencer:   sequencer,
		TxManager:   txManager,
		Tax:         taxService,
		Currency:    currencyService,
		Renderer:    renderer,
		Publisher:   wsHub,
		Metrics:     m,
		Logger:      log,
		MaxAttempts: cfg.Invoice.MaxAttempts,
	})
	statisticsService := service.NewStatisticsService(statisticsRepo)

	// Initialize Handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	taxHandler := handler.NewTaxHandler(taxService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), logger.GinMiddleware(log), logger.Recovery(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.GET("/ws", wsHub.ServeWs)

	// API Routing
	api := router.Group("")
	api.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	invoiceHandler.RegisterRoutes(api)
	taxHandler.RegisterRoutes(api)
	currencyHandler.RegisterRoutes(api)
	statisticsHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
