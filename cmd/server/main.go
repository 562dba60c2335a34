package main

import (
	"net/http"
	"os"

	"fashion-marketplace-backend/internal/config"
	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/handlers"
	"fashion-marketplace-backend/internal/middleware"
	"fashion-marketplace-backend/internal/publication"
	"fashion-marketplace-backend/internal/services"
	"fashion-marketplace-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set Gin mode and log output
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Run migrations before anything touches the schema
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize migrator")
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatal().Err(err).Msg("migration failed")
	}
	migrator.Close()
	log.Info().Msg("migrations completed")

	// Database client for direct queries
	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database client")
	}
	defer dbClient.Close()

	// Supabase clients for auth and storage
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize supabase client")
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage client")
	}

	// Services
	assetService := services.NewAssetService(dbClient, storageClient)
	pubService := publication.NewService(dbClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(supabaseClient, dbClient)
	projectsHandler := handlers.NewProjectsHandler(dbClient, assetService, pubService)
	assetsHandler := handlers.NewAssetsHandler(dbClient, assetService)
	publicationsHandler := handlers.NewPublicationsHandler(dbClient, pubService)
	productsHandler := handlers.NewProductsHandler(dbClient)
	designersHandler := handlers.NewDesignersHandler(dbClient)
	collectionsHandler := handlers.NewCollectionsHandler(dbClient)
	ordersHandler := handlers.NewOrdersHandler(dbClient)
	categoriesHandler := handlers.NewCategoriesHandler(dbClient)
	styleboxesHandler := handlers.NewStyleboxesHandler(dbClient)
	draftsHandler := handlers.NewDraftsHandler(dbClient)
	dashboardHandler := handlers.NewDashboardHandler(dbClient)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Auth entry points (no middleware; there is no session yet)
	router.POST("/api/v1/auth/signup", authHandler.SignUp)
	router.POST("/api/v1/auth/signin", authHandler.SignIn)

	// Designer-facing API
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg, dbClient))

	api.POST("/auth/signout", authHandler.SignOut)
	api.GET("/me", authHandler.Me)
	api.GET("/dashboard", dashboardHandler.DesignerDashboard)
	api.GET("/profile", designersHandler.GetProfile)
	api.PUT("/profile", designersHandler.UpdateProfile)

	// Portfolio projects
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PUT("/projects/:project_id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	// Project assets
	api.POST("/projects/:project_id/assets", assetsHandler.Upload)
	api.GET("/projects/:project_id/assets", assetsHandler.ListAssets)
	api.DELETE("/projects/:project_id/assets/:asset_id", assetsHandler.DeleteAsset)

	// Publication pipeline
	api.POST("/projects/:project_id/submit", projectsHandler.SubmitForPublication)
	api.GET("/publications", publicationsHandler.ListMine)

	// Catalog browsing and own orders
	api.GET("/products", productsHandler.ListProducts)
	api.GET("/products/:product_id", productsHandler.GetProduct)
	api.GET("/categories", categoriesHandler.ListCategories)
	api.GET("/orders", ordersHandler.ListMyOrders)

	// Styleboxes
	api.GET("/styleboxes", styleboxesHandler.ListActive)
	api.POST("/styleboxes/:stylebox_id/submissions", styleboxesHandler.Submit)

	// Auto-save drafts
	api.PUT("/drafts/:entity_type", draftsHandler.SaveDraft)
	api.GET("/drafts/:entity_type", draftsHandler.GetDraft)
	api.DELETE("/drafts/:entity_type", draftsHandler.DeleteDraft)

	// Admin API: superadmin role required on every route
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg, dbClient))

	admin.GET("/dashboard", dashboardHandler.AdminDashboard)
	admin.GET("/audit", dashboardHandler.AuditLog)

	// Review queue
	admin.GET("/publications", publicationsHandler.ListQueue)
	admin.POST("/publications/:request_id/review", publicationsHandler.Review)
	admin.GET("/publications/:request_id/history", publicationsHandler.History)
	admin.POST("/publications/:request_id/revenue-override", publicationsHandler.RevenueOverride)

	// Designer management
	admin.GET("/designers", designersHandler.ListDesigners)
	admin.GET("/designers/:user_id", designersHandler.GetDesigner)
	admin.PUT("/designers/:user_id", designersHandler.UpdateDesigner)

	// Product management
	admin.GET("/products", productsHandler.ListProducts)
	admin.POST("/products", productsHandler.CreateProduct)
	admin.GET("/products/:product_id", productsHandler.GetProduct)
	admin.PUT("/products/:product_id", productsHandler.UpdateProduct)
	admin.DELETE("/products/:product_id", productsHandler.DeleteProduct)

	// Collection management
	admin.GET("/collections", collectionsHandler.ListCollections)
	admin.POST("/collections", collectionsHandler.CreateCollection)
	admin.PUT("/collections/:collection_id", collectionsHandler.UpdateCollection)
	admin.DELETE("/collections/:collection_id", collectionsHandler.DeleteCollection)
	admin.POST("/collections/:collection_id/products/:product_id", collectionsHandler.AddProduct)
	admin.DELETE("/collections/:collection_id/products/:product_id", collectionsHandler.RemoveProduct)

	// Orders
	admin.GET("/orders", ordersHandler.ListOrders)
	admin.GET("/orders/:order_id", ordersHandler.GetOrder)
	admin.PUT("/orders/:order_id/status", ordersHandler.UpdateOrderStatus)

	// Categories and styleboxes
	admin.POST("/categories", categoriesHandler.CreateCategory)
	admin.DELETE("/categories/:category_id", categoriesHandler.DeleteCategory)
	admin.POST("/styleboxes", styleboxesHandler.CreateStylebox)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
