package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/multixy/storefront/docs"
	"github.com/multixy/storefront/internal/api/handler"
	"github.com/multixy/storefront/internal/api/middleware"
	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
	"github.com/multixy/storefront/internal/core/service"
	"github.com/multixy/storefront/internal/core/token"
	mongostore "github.com/multixy/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/multixy/storefront/internal/infrastructure/db/redis"
	"github.com/multixy/storefront/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	codec := token.NewCodec(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	userRepo := mongostore.NewUserRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	cartRepo := mongostore.NewCartRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, codec, audit, log)
	userService := service.NewUserService(userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	orderService := service.NewOrderService(orderRepo, cartRepo, cfg.Order.WhatsAppNumber, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Auth.RefreshTTL, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService, authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)

	requireAuth := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	loginLimit := middleware.LoginLimit(
		redisstore.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow),
		log,
	)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login, loginLimit)
	e.POST("/refresh-token", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)
	e.GET("/protected-route", authHandler.Protected, requireAuth)

	// --- Users ---
	users := e.Group("/api/users")
	users.POST("/create", userHandler.Create) // public registration
	users.GET("", userHandler.List, requireAuth, adminOnly)
	users.GET("/:id", userHandler.Get, requireAuth)
	users.PUT("/update/:id", userHandler.Update, requireAuth)
	users.PUT("/password/:id", userHandler.UpdatePassword, requireAuth)
	users.DELETE("/delete/:id", userHandler.Delete, requireAuth, adminOnly)

	// --- Catalog: categories ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("/create", categoryHandler.Create, requireAuth, adminOnly)
	categories.PUT("/update/:id", categoryHandler.Update, requireAuth, adminOnly)
	categories.DELETE("/delete/:id", categoryHandler.Delete, requireAuth, adminOnly)

	// --- Catalog: products ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/:id", productHandler.Get)
	products.POST("/create", productHandler.Create, requireAuth, adminOnly)
	products.PUT("/update/:id", productHandler.Update, requireAuth, adminOnly)
	products.DELETE("/delete/:id", productHandler.Delete, requireAuth, adminOnly)

	// --- Cart (always scoped to the authenticated user) ---
	carts := e.Group("/api/carts", requireAuth)
	carts.POST("/create", cartHandler.Add)
	carts.GET("", cartHandler.List)
	carts.PUT("/update/:id_product", cartHandler.UpdateQuantity)
	carts.DELETE("/delete/:id_product", cartHandler.Remove)

	// --- Orders ---
	orders := e.Group("/api/orders")
	orders.POST("/create", orderHandler.Create, requireAuth)
	orders.PUT("/update/:id_order", orderHandler.UpdateStatus, requireAuth, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
