package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appProject "github.com/BOKA26/lovotech-nexus/pkg/app/project"
	"github.com/BOKA26/lovotech-nexus/pkg/config"
	handlers "github.com/BOKA26/lovotech-nexus/pkg/handlers/http"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/aigateway"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/database"
	_ "github.com/BOKA26/lovotech-nexus/pkg/infra/database/migrations"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/github"
	infraJWT "github.com/BOKA26/lovotech-nexus/pkg/infra/jwt"
	infraLogger "github.com/BOKA26/lovotech-nexus/pkg/infra/logger"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/ratelimit"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/repository"
	"github.com/BOKA26/lovotech-nexus/pkg/middleware"
	"github.com/BOKA26/lovotech-nexus/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	if cfg.Server.JWTSecret == "" {
		logger.Fatal("server jwt secret is not configured")
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	// repository
	projectRepository := repository.NewProjectRepository(db.DB)
	userRoleRepository := repository.NewUserRoleRepository(db.DB)

	// rate limiting state for the chat proxy
	limiter := ratelimit.NewLimiter(
		cfg.Chat.RateLimit,
		time.Duration(cfg.Chat.RateWindowMs)*time.Millisecond,
		nil,
	)
	limiter.StartSweeper(time.Duration(cfg.Chat.SweepIntervalSec) * time.Second)
	defer limiter.Stop()

	// outbound clients
	gatewayClient := aigateway.NewClient(cfg.Chat.GatewayURL, cfg.Chat.APIKey, cfg.Chat.Model)
	githubClient := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token)

	// project sync
	overrides, err := appProject.OverridesFromSettings(cfg.Projects.Overrides)
	if err != nil {
		logger.Fatalf("invalid project overrides: %v", err)
	}
	mapper := appProject.NewMapper(overrides, cfg.GitHub.PagesOwner, nil)
	syncer := appProject.NewSyncer(logger, githubClient, projectRepository, mapper, cfg.Projects.ExcludeName)

	jwtManager := infraJWT.NewJwtManager(cfg.Server.JWTSecret)

	middlewareTransport := middleware.Transport{
		CORSMiddleware:      middleware.NewCORSMiddleware(),
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager, userRoleRepository),
	}

	handlerTransport := handlers.HandlerTransport{
		ChatCompletionHandler: handlers.NewChatCompletionHandler(logger, limiter, gatewayClient),
		SyncProjectsHandler:   handlers.NewSyncProjectsHandler(logger, syncer),
		ListProjectsHandler:   handlers.NewListProjectsHandler(logger, projectRepository),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
