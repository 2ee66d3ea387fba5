package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cacheadapter "github.com/adarshtmg2060/todo-app/internal/adapter/cache"
	dbadapter "github.com/adarshtmg2060/todo-app/internal/adapter/db"
	httpadapter "github.com/adarshtmg2060/todo-app/internal/adapter/http"
	"github.com/adarshtmg2060/todo-app/internal/adapter/http/handlers"
	httpmiddleware "github.com/adarshtmg2060/todo-app/internal/adapter/http/middleware"
	appservice "github.com/adarshtmg2060/todo-app/internal/app/service"
	"github.com/adarshtmg2060/todo-app/internal/config"
	"github.com/adarshtmg2060/todo-app/internal/core/ports"
	"github.com/adarshtmg2060/todo-app/pkg/translator"
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

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to sqlite", zap.Error(err))
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("failed to close sqlite connection", zap.Error(err))
		}
	}()

	// The cache is optional: a missing or unreachable redis only costs the
	// read-through path, never the service.
	var listingCache ports.ListingCache
	var healthCache handlers.Pinger
	if !cfg.CacheDisabled {
		connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := cacheadapter.Connect(connectCtx, cfg.RedisURL, cacheadapter.DefaultTTL)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, serving without cache", zap.Error(err))
		} else {
			listingCache = redisCache
			healthCache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					logger.Warn("failed to close redis connection", zap.Error(err))
				}
			}()
		}
	}

	todoRepository := dbadapter.NewTodoRepository(db)
	todoService := appservice.NewTodoService(todoRepository, listingCache)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db, healthCache)
	todoHandler := handlers.NewTodoHandler(todoService)
	httpadapter.RegisterRoutes(r, healthHandler, todoHandler)

	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
