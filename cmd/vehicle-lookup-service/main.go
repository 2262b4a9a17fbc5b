package main

import (
	"fmt"
	"os"

	"vehicle-lookup-service/internal/auth"
	"vehicle-lookup-service/internal/client"
	"vehicle-lookup-service/internal/config"
	"vehicle-lookup-service/internal/db"
	httphandler "vehicle-lookup-service/internal/http"
	"vehicle-lookup-service/internal/http/middleware"
	"vehicle-lookup-service/internal/logger"
	"vehicle-lookup-service/internal/repository"
	"vehicle-lookup-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	historyRepo := repository.NewScanHistoryRepository(database)

	registryClient := client.NewRegistryClient(cfg.Registry)

	historyService := service.NewHistoryService(historyRepo, appLogger)
	lookupService := service.NewLookupService(vehicleRepo, registryClient, historyService, appLogger)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(lookupService, historyService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	optionalAuthMiddleware := middleware.OptionalAuth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, optionalAuthMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting vehicle lookup service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
