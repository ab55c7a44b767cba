package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/AleksandrYakovlevgtn/shareit/internal/config"
	"github.com/AleksandrYakovlevgtn/shareit/internal/gateway"
	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt gateway...", "server_url", cfg.Gateway.ServerURL)

	gw := gateway.New(cfg.Gateway.ServerURL)

	addr := cfg.GetGatewayAddress()
	logger.Info("ShareIt gateway listening", "addr", addr)
	if err := http.ListenAndServe(addr, gw.Router()); err != nil {
		log.Fatalf("Gateway failed: %v", err)
	}
}
