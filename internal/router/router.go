package router // package router defines how HTTP routes are registered for the dashboard

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing
	"github.com/redis/go-redis/v9"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/config"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/handler"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/middleware"
)

// RegisterRoutes wires every page and endpoint of the dashboard onto
// the Echo instance. The route guard runs globally as a pre-render
// gate: public pages redirect authenticated users to the dashboard,
// protected pages redirect anonymous users to the login page. The
// credential-bearing form posts additionally pass the rate limiter.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, rdb *redis.Client) {
	e.Use(middleware.RouteGuard())

	// Health check for load balancers; exempt from the guard.
	e.GET("/healthz", handler.Health)

	// Landing page doubles as the login screen.
	e.GET("/", h.LoginPage)

	// Auth pages. Posting credentials goes through the token bucket so
	// a single address cannot brute-force the backend through us.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	auth := e.Group("/auth")
	auth.GET("/login", h.LoginPage)
	auth.POST("/login", h.LoginSubmit, limiter)
	auth.GET("/register", h.RegisterPage)
	auth.POST("/register", h.RegisterSubmit, limiter)
	auth.POST("/logout", h.Logout)

	// Protected pages; the guard guarantees a token is present before
	// any of these handlers run.
	e.GET("/dashboard", h.Dashboard)
	e.GET("/dashboard/service/:service_code", h.ServicePage)
	e.POST("/dashboard/service/:service_code", h.ServicePay)
	e.GET("/account", h.Account)
	e.POST("/account/update", h.AccountUpdate)
	e.POST("/account/image", h.AccountImage)
	e.GET("/topup", h.TopUpPage)
	e.POST("/topup", h.TopUpSubmit)
	e.GET("/transaction", h.History)

	// JSON endpoint polled by the dashboard balance card.
	e.GET("/api/balance", h.APIBalance)

	// Static assets are served outside the guard policy.
	e.Static("/static", "web/static")
}
