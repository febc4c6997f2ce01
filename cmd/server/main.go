package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "frases/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"frases/internal/auth"
	"frases/internal/cache"
	"frases/internal/config"
	"frases/internal/db"
	"frases/internal/handler"
	"frases/internal/model"
	"frases/internal/notify"
	"frases/internal/repository"
	"frases/internal/router"
	"frases/internal/service"
)

// @title Frases Moderation API
// @version 1.0
// @description Quote submission and moderation API with JWT admin authentication and realtime change notifications.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Frase{}, &model.Usuario{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.Frase{}, &model.Usuario{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unreachable, caching and refresh tokens degraded: %v", err)
	}

	hub := notify.NewHub()

	fraseRepo := repository.NewFraseRepository(gormDB)
	usuarioRepo := repository.NewUsuarioRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	fraseService := service.NewFraseService(fraseRepo, cacheClient, hub)
	authService := service.NewAuthService(usuarioRepo, jwtService, tokenStore)

	fraseHandler := handler.NewFraseHandler(fraseService)
	authHandler := handler.NewAuthHandler(authService)
	eventsHandler := handler.NewEventsHandler(hub)

	router.Register(e, cfg, fraseHandler, authHandler, eventsHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
