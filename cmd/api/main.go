package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/TukaHeba/Task-System/internal/adapter/db"
	httpadapter "github.com/TukaHeba/Task-System/internal/adapter/http"
	"github.com/TukaHeba/Task-System/internal/adapter/http/handlers"
	httpmiddleware "github.com/TukaHeba/Task-System/internal/adapter/http/middleware"
	appservice "github.com/TukaHeba/Task-System/internal/app/service"
	"github.com/TukaHeba/Task-System/internal/config"
	"github.com/TukaHeba/Task-System/pkg/token"
	"github.com/TukaHeba/Task-System/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	taskService := appservice.NewTaskService(taskRepository, userRepository,
		appservice.WithLogger(logger.Named("tasks")),
		appservice.WithPageSize(cfg.TasksPerPage),
	)
	tokens := token.NewManager(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r,
		httpadapter.Handlers{
			Health: handlers.NewHealthHandler(db),
			Tasks:  handlers.NewTaskHandler(taskService),
		},
		httpadapter.Auth{Verifier: tokens, Users: userRepository},
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
