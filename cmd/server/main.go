package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code_tutor/internal/api"
	"code_tutor/internal/app/service"
	"code_tutor/internal/common/security"
	"code_tutor/internal/domain/repository"
	"code_tutor/internal/platform/cache"
	"code_tutor/internal/platform/config"
	"code_tutor/internal/platform/database"
	"code_tutor/internal/platform/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT(cfg.JWTKey)

	// 3. Initialize Database
	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.MigrationURL(), database.MigrateUp); err != nil {
			logrus.Fatalf("Migration failed: %v", err)
		}
	}
	database.Connect()
	defer database.Close()

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	answerRepo := repository.NewPgAnswerRepository(database.DB)
	submissionRepo := repository.NewPgSubmissionRepository(database.DB)

	// 5. Optional answer cache
	var answerCache service.AnswerCache
	if cfg.AnswerCacheEnabled {
		cache.ConnectRedis()
		defer cache.CloseRedis()
		answerCache = cache.NewRedisAnswerCache(cache.RDB, cfg.AnswerCacheTTL)
	}

	// 6. Initialize Services
	answerService := service.NewAnswerService(answerRepo, answerCache)
	submissionService := service.NewSubmissionService(submissionRepo, answerRepo)
	userService := service.NewUserService(userRepo, service.NewPasswordAuthenticator(userRepo), cfg.AuthIssueTokens, cfg.JWTExp)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(answerService, submissionService, userService, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Could not listen on %s: %v", cfg.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	logrus.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
		return
	}
	logrus.Info("Server stopped gracefully.")
}
