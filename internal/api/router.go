package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/tool2u/rental-platform/internal/api/handler"
	"github.com/tool2u/rental-platform/internal/api/middleware"
	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Session   ports.SessionService
	Catalog   ports.CatalogService
	Basket    ports.BasketService
	Orders    ports.OrderService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	LoginPath string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("toolrent"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Session, d.JWTSecret)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	basketHandler := handler.NewBasketHandler(d.Basket, d.Session)
	orderHandler := handler.NewOrderHandler(d.Orders, d.Session)
	staffHandler := handler.NewStaffHandler(d.Orders)

	guard := middleware.Guard(d.Session, d.LoginPath)
	bearer := middleware.Auth(d.JWTSecret)
	authLimit := middleware.RateLimit(rate.Limit(5), 10)

	// --- Auth routes ---
	auth := e.Group("/auth", authLimit)
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Public catalog routes ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:id", catalogHandler.Get)
	e.GET("/v1/categories", catalogHandler.Categories)

	// --- Guarded storefront routes ---
	basket := e.Group("/v1/basket", guard)
	basket.GET("", basketHandler.Get)
	basket.DELETE("", basketHandler.Clear)
	basket.POST("/items", basketHandler.AddItem)
	basket.PUT("/items/:product_id", basketHandler.UpdateItem)
	basket.DELETE("/items/:product_id", basketHandler.RemoveItem)

	orders := e.Group("/v1/orders", guard)
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/track", orderHandler.Track)

	// --- Staff routes (bearer token + RBAC) ---
	staff := e.Group("/v1/staff", bearer)
	staff.GET("/orders",
		staffHandler.ListOrders,
		middleware.RBAC(string(domain.RoleOwner), string(domain.RoleAdmin)))
	staff.POST("/orders/:id/status",
		staffHandler.AdvanceStatus,
		middleware.RBAC(string(domain.RoleDriver), string(domain.RoleOwner), string(domain.RoleAdmin)))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
