package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	api "github.com/AleksandrYakovlevgtn/shareit/internal/api/http"
	"github.com/AleksandrYakovlevgtn/shareit/internal/config"
	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository/postgres"
	"github.com/AleksandrYakovlevgtn/shareit/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; the config loader picks the
	// variables up through its env overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt server...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := postgres.NewStore(db)

	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("no SendGrid API key configured, email notifications disabled")
		emailSvc = service.NewNoopEmailService()
	}

	userSvc := service.NewUserService(store.UserRepository)
	itemSvc := service.NewItemService(store.ItemRepository, store.UserRepository, store.BookingRepository, store.CommentRepository)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.ItemRepository, store.UserRepository, emailSvc)
	requestSvc := service.NewItemRequestService(store.ItemRequestRepository, store.ItemRepository, store.UserRepository)

	router := api.NewRouter(userSvc, itemSvc, bookingSvc, requestSvc)

	addr := cfg.GetServerAddress()
	logger.Info("ShareIt server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
