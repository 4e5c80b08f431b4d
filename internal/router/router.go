// internal/router/router.go
package router

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/javajoker/rentall-backend/internal/config"
	"github.com/javajoker/rentall-backend/internal/handlers"
	"github.com/javajoker/rentall-backend/internal/metrics"
	"github.com/javajoker/rentall-backend/internal/middleware"
	"github.com/javajoker/rentall-backend/internal/repository"
	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

const Version = "1.0.0"

// Router owns the gin engine and the background pieces that must be
// stopped with it.
type Router struct {
	Engine       *gin.Engine
	notification *services.NotificationService
	limiters     []*middleware.RateLimiter
}

// Initialize wires repositories, services and handlers onto a new engine.
// A nil registry disables metrics and the /metrics endpoint.
func Initialize(db *gorm.DB, cfg *config.Config, registry *prometheus.Registry) (*Router, error) {
	var m *metrics.Metrics
	if registry != nil {
		m = metrics.New(registry)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	blogService, err := services.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blog: %w", err)
	}

	comparisonService := services.NewComparisonService(catalogRepo, cfg.Comparison.FetchTimeout, m)
	softwareService := services.NewSoftwareService(catalogRepo, comparisonService)
	reviewService := services.NewReviewService(catalogRepo, softwareService)
	listingService := services.NewListingService(catalogRepo, notificationService)
	contactService := services.NewContactService(contactRepo, notificationService)
	sitemapService := services.NewSitemapService(catalogRepo, blogService, cfg.Site.BaseURL)

	// Initialize handlers
	softwareHandler := handlers.NewSoftwareHandler(softwareService, comparisonService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	listingHandler := handlers.NewListingHandler(listingService, softwareService, storageService)
	blogHandler := handlers.NewBlogHandler(blogService)
	contactHandler := handlers.NewContactHandler(contactService)
	seoHandler := handlers.NewSEOHandler(sitemapService)

	verifier := utils.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience)

	rt := &Router{
		Engine:       gin.New(),
		notification: notificationService,
	}
	r := rt.Engine

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Metrics(m))

	submitLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		general := middleware.PerSecond(cfg.RateLimit.GeneralPerSec, cfg.RateLimit.GeneralBurst)
		submit := middleware.PerMinute(cfg.RateLimit.SubmitPerMin, cfg.RateLimit.SubmitBurst)
		rt.limiters = append(rt.limiters, general, submit)
		r.Use(general.Middleware())
		submitLimit = submit.Middleware()
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": Version,
		})
	})

	if registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// SEO
	r.GET("/sitemap.xml", seoHandler.Sitemap)
	r.GET("/robots.txt", seoHandler.Robots)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Software directory, detail and reviews
		software := v1.Group("/software")
		{
			software.GET("", softwareHandler.ListSoftware)
			software.GET("/filters", softwareHandler.GetFilters)
			software.GET("/search", softwareHandler.SearchSoftware)
			software.GET("/:name", softwareHandler.GetSoftware)
			software.GET("/:name/reviews", reviewHandler.ListReviews)
			software.POST("/:id/reviews", submitLimit, reviewHandler.CreateReview)
		}

		v1.GET("/compare", softwareHandler.Compare)

		// Vendor listing wizard
		listings := v1.Group("/listings")
		listings.Use(middleware.AuthRequired(verifier))
		{
			listings.POST("", listingHandler.CreateListing)
			listings.GET("/mine", listingHandler.GetMyListings)
		}
		v1.POST("/media", middleware.AuthRequired(verifier), listingHandler.UploadMedia)

		// Blog routes
		blogs := v1.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListPosts)
			blogs.GET("/categories", blogHandler.GetCategories)
			blogs.GET("/:id", blogHandler.GetPost)
		}

		// Contact routes
		contact := v1.Group("/contact")
		contact.Use(submitLimit)
		{
			contact.POST("", contactHandler.SubmitContact)
			contact.POST("/vendor-interest", contactHandler.SubmitVendorInterest)
		}
	}

	// Local uploads are served from disk outside production
	if !cfg.IsProduction() {
		r.Static("/uploads", "./uploads")
	}

	return rt, nil
}

// Close stops the rate limiter sweepers and waits for queued emails.
func (rt *Router) Close() {
	for _, l := range rt.limiters {
		l.Stop()
	}
	rt.notification.Wait()
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"X-Total-Count", "X-Page", "X-Per-Page", "X-Total-Pages", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// credentials cannot be combined with a wildcard origin
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
