package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/blog-backend/internal/handlers/http"
	"github.com/rafabene/blog-backend/internal/infrastructure/config"
	"github.com/rafabene/blog-backend/internal/infrastructure/i18n"
	"github.com/rafabene/blog-backend/internal/infrastructure/logging"
	"github.com/rafabene/blog-backend/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/blog-backend/internal/infrastructure/security"
	"github.com/rafabene/blog-backend/internal/services"
)

//	@title			Blog API
//	@version		1.0
//	@description	Users, login and posts for the blog frontend.
//	@host			localhost:5000
//	@BasePath		/
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting blog backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados (cria o schema se necessário)
	db, err := gormstore.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := gormstore.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Inicializar i18n; LOCALES_DIR permite trocar as traduções sem recompilar
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := gormstore.NewUserRepository(db)
	postRepo := gormstore.NewPostRepository(db)
	uow := gormstore.NewUnitOfWork(db)

	// Inicializar services
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	accountService := services.NewAccountService(userRepo, uow, hasher, logger)
	postService := services.NewPostService(postRepo, userRepo, uow, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:         cfg,
		Logger:         logger,
		I18n:           i18nService,
		AccountHandler: httphandlers.NewAccountHandler(accountService),
		PostHandler:    httphandlers.NewPostHandler(postService),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
