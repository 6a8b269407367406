package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/controllers"
	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
)

const orderPollInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.WithField("base_domain", cfg.BaseDomain).Info("starting Quentinhas platform API")

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Tenant{}, &models.Category{}, &models.Product{}, &models.Order{}); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("database migration completed")

	// Logo storage is optional in development
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			logrus.Fatalf("Failed to initialize S3 service: %v", err)
		}
	} else {
		logrus.Warn("AWS_S3_BUCKET not set, logo uploads disabled")
	}

	// Tenant resolution pipeline: store → resolver with TTL cache
	cache := services.NewTenantCache(cfg.TenantCacheTTL)
	resolver := services.NewTenantResolver(services.NewGormTenantStore(), cache)

	// Live updates poller, stopped with the process
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher := services.NewOrderWatcher(services.NewOrderService(), orderPollInterval)
	watcher.Start(ctx)

	controllers.Init(resolver, watcher)

	router := setupRouter(cfg, resolver)

	port := ":" + cfg.Port
	logrus.Infof("server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the full route tree. Every /api/v1 route runs behind
// tenant resolution; the platform group additionally refuses tenant
// subdomains and the admin group requires the tenant's admin identity.
func setupRouter(cfg *config.Config, resolver *services.TenantResolver) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.TenantResolution(resolver, cfg.BaseDomain))
	{
		// Storefront (tenant subdomain, public)
		tenantRoutes := v1.Group("")
		tenantRoutes.Use(middleware.RequireTenant())
		{
			tenantRoutes.GET("/tenant", controllers.GetCurrentTenant)
			tenantRoutes.GET("/theme.css", controllers.GetThemeCSS)
			tenantRoutes.GET("/menu", controllers.GetMenu)
			tenantRoutes.POST("/orders", controllers.CreateOrder)
		}

		// Platform (main domain)
		platform := v1.Group("/platform")
		platform.Use(middleware.RequireMainDomain())
		{
			platform.GET("/slug-check", controllers.CheckSlugAvailability)
			platform.GET("/slug-suggestions", controllers.SuggestSlugs)
			platform.POST("/tenants", middleware.EnsureValidToken(cfg), controllers.RegisterTenant)
		}

		// Admin (tenant subdomain, tenant admin only)
		admin := v1.Group("/admin")
		admin.Use(middleware.EnsureValidToken(cfg), middleware.RequireTenantAdmin())
		{
			admin.GET("/orders", controllers.GetAdminOrders)
			admin.GET("/orders/stats", controllers.GetOrderStats)
			admin.GET("/orders/events", controllers.OrderEvents)
			admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
			admin.PUT("/settings", controllers.UpdateSettings)
			admin.PUT("/theme", controllers.UpdateTheme)
			admin.POST("/theme/logo", controllers.UploadLogo)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quentinhas platform API is running",
	})
}
