package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shoply/storefront-api/docs"
	"github.com/shoply/storefront-api/internal/api/handler"
	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/service"
	mongorepo "github.com/shoply/storefront-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/shoply/storefront-api/internal/infrastructure/db/redis"
	"github.com/shoply/storefront-api/internal/infrastructure/http/handlers"
	"github.com/shoply/storefront-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	mail service.MailDispatcher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	users := mongorepo.NewUserRepository(db)
	businesses := mongorepo.NewBusinessRepository(db)
	products := mongorepo.NewProductRepository(db)
	cache := redisrepo.NewProductCache(rdb)

	codec := service.NewTokenCodec(cfg.Secret)
	authService := service.NewAuthService(users, businesses, codec, mail, cfg.BaseURL, log)
	businessService := service.NewBusinessService(businesses, log)
	productService := service.NewProductService(products, businesses, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService, cfg.UploadDir)
	productHandler := handler.NewProductHandler(productService, cfg.UploadDir)

	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Token)
	e.GET("/verification", authHandler.Verify)

	// --- Business routes (authenticated) ---
	business := e.Group("/business", authRequired)
	business.GET("", businessHandler.GetOwn)
	business.PUT("/:id", businessHandler.Update)
	business.POST("/:id/logo", businessHandler.UploadLogo)

	// --- Product routes ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)

	productsGroup := e.Group("/products", authRequired)
	productsGroup.POST("", productHandler.Create)
	productsGroup.PUT("/:id", productHandler.Update)
	productsGroup.DELETE("/:id", productHandler.Delete)
	productsGroup.POST("/:id/image", productHandler.UploadImage)

	// --- Static uploads ---
	e.Static("/static/images", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
