package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"shiptrack/config"
	"shiptrack/db"
	"shiptrack/db/mongo"
	"shiptrack/db/postgres"
	"shiptrack/handlers"
	"shiptrack/logger"
	"shiptrack/repository"
	"shiptrack/routes"
	"shiptrack/workers"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	zlog, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	// Run migrations
	db.RunMigrations(cfg.PostgresURL)

	pg := postgres.NewPostgresDB(cfg.PostgresURL)
	if err := pg.Connect(); err != nil {
		panic(err)
	}
	defer pg.Disconnect()

	catalogRepo := repository.NewPostgresCatalogRepo(pg.Conn)
	shipmentRepo := repository.NewPostgresShipmentRepo(pg.Conn)
	eventRepo := repository.NewPostgresEventRepo(pg.Conn)
	derivedRepo := repository.NewPostgresDerivedRepo(pg.Conn)
	exceptionRepo := repository.NewPostgresExceptionRepo(pg.Conn)
	userRepo := repository.NewPostgresUserRepo(pg.Conn)

	// Raw feed archive is optional; skipped when MONGO_URL is unset.
	var archiveRepo repository.ArchiveRepository
	if cfg.MongoURL != "" {
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()
		archiveRepo = repository.NewMongoArchiveRepo(mg.Client)
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	catalogHandler := &handlers.CatalogHandler{Repo: catalogRepo}
	shipmentHandler := &handlers.ShipmentHandler{
		Repo:      shipmentRepo,
		Derived:   derivedRepo,
		Events:    eventRepo,
		Exception: exceptionRepo,
	}
	eventHandler := &handlers.EventHandler{
		Repo:    eventRepo,
		Archive: archiveRepo,
		Logger:  zlog,
	}
	riskHandler := &handlers.RiskHandler{Repo: derivedRepo, Logger: zlog}
	exceptionHandler := &handlers.ExceptionHandler{Repo: exceptionRepo}

	// Report handler with combined repository
	reportRepo := &repository.ReportRepository{
		ShipmentRepo: shipmentRepo,
		DerivedRepo:  derivedRepo,
		EventRepo:    eventRepo,
	}
	reportHandler := &handlers.ReportHandler{
		Repo:      reportRepo,
		Shipments: shipmentRepo,
		Logger:    zlog,
	}

	routes.SetupRoutes(zlog, userHandler, catalogHandler, shipmentHandler,
		eventHandler, riskHandler, exceptionHandler, reportHandler)

	// Scheduled risk view refresh
	orchestrator := workers.NewOrchestrator(zlog, []workers.Worker{
		workers.NewRiskRefreshWorker(zlog, derivedRepo, cfg.RiskRefreshSchedule),
	})
	c, err := orchestrator.Start(context.Background())
	if err != nil {
		panic(err)
	}
	defer c.Stop()

	port := cfg.Port
	zlog.Info("server starting", zap.String("port", port))
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
