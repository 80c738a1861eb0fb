package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/config"  // Internal config loader
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway" // Backend API client
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/handler" // HTTP handlers and renderer
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/queue"   // Transaction event consumer
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/router"  // Internal router setup
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/session" // Session controller and stores
)

func main() {
	// Load .env when present; a missing file is fine in production
	// where the environment is injected by the platform.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Redis backs the user cache and the auth rate limiter; both
	// degrade gracefully when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, using in-process session cache")
	}

	api := gateway.New(cfg.APIBaseURL)
	users := session.NewUserCache(rdb, cfg.SessionTTL)
	sessions := session.NewController(api, users, cfg.SessionTTL)

	e := echo.New()
	renderer, err := handler.NewRenderer("web/templates")
	if err != nil {
		log.Fatal(err)
	}
	e.Renderer = renderer

	h := handler.New(api, sessions)
	router.RegisterRoutes(e, h, rdb)

	// Consume transaction.completed events in the background; the
	// consumer runs its own reconnect loop for the broker.
	go func() {
		if err := queue.StartTransactionConsumer(); err != nil {
			log.Printf("transaction consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
