// Package server assembles the HTTP router shared by the API binary and the
// integration tests.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finnews/internal/config"
	_ "finnews/internal/docs" // Swagger docs
	"finnews/internal/handlers"
	"finnews/internal/middleware"
	"finnews/internal/services"
)

// NewRouter wires services, handlers and middleware on top of db.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Services
	userService := services.NewUserService(db)
	assetService := services.NewAssetService(db)
	newsService := services.NewNewsService(db)
	analysisService := services.NewAnalysisService(db)
	auditService := services.NewAuditService(db)

	issuer := middleware.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpirationDur)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, issuer)
	userHandler := handlers.NewUserHandler(userService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	newsHandler := handlers.NewNewsHandler(newsService, auditService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, auditService)
	demoHandler := handlers.NewDemoHandler()
	systemHandler := handlers.NewSystemHandler(cfg.Version, cfg.Env)
	pipelineHandler := handlers.NewPipelineHandler(newsService, analysisService, assetService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// System endpoints
	router.GET("/api/health", systemHandler.Health)
	router.GET("/api/version", systemHandler.Version)

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Demo fixtures (public). The static /news/events paths share the tree
	// with the protected /news/:id routes.
	v1.GET("/market/data", demoHandler.GetMarketData)
	v1.GET("/market/data/:date", demoHandler.GetMarketDataByDate)
	v1.GET("/news/events", demoHandler.ListEvents)
	v1.GET("/news/events/network", demoHandler.GetEventNetwork)
	v1.GET("/news/events/:index", demoHandler.GetEvent)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(issuer, userService))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)

	users := protected.Group("/users")
	handleCollection(users, http.MethodGet, userHandler.ListUsers)
	handleCollection(users, http.MethodPost, userHandler.CreateUser)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	assets := protected.Group("/assets")
	handleCollection(assets, http.MethodGet, assetHandler.ListAssets)
	handleCollection(assets, http.MethodPost, assetHandler.CreateAsset)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)
	assets.GET("/:id/prices", assetHandler.GetPriceHistory)
	assets.POST("/:id/prices", assetHandler.RecordPrices)

	news := protected.Group("/news")
	handleCollection(news, http.MethodGet, newsHandler.ListNews)
	handleCollection(news, http.MethodPost, newsHandler.CreateNews)
	news.GET("/:id", newsHandler.GetNews)
	news.PUT("/:id", newsHandler.UpdateNews)
	news.DELETE("/:id", newsHandler.DeleteNews)
	news.POST("/:id/reanalyze", newsHandler.Reanalyze)
	news.GET("/:id/analysis", analysisHandler.GetAnalysis)
	news.POST("/:id/analysis/annotations", analysisHandler.CreateAnnotation)

	annotations := protected.Group("/annotations")
	annotations.GET("/:id", analysisHandler.GetAnnotation)
	annotations.DELETE("/:id", analysisHandler.DeleteAnnotation)

	// Pipeline routes (API key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.GET("/news/pending", pipelineHandler.ListPending)
	pipeline.PUT("/news/:id/analysis", pipelineHandler.UpsertAnalysis)
	pipeline.POST("/news", pipelineHandler.IngestNews)
	pipeline.GET("/assets", pipelineHandler.ListAssets)

	return router
}

// handleCollection serves a collection root both with and without the
// trailing slash instead of redirecting.
func handleCollection(group *gin.RouterGroup, method string, handler gin.HandlerFunc) {
	group.Handle(method, "", handler)
	group.Handle(method, "/", handler)
}
