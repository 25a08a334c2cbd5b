package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/middleware"
	"compliance-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupPostRoutes(v1, c)
		setupUploadRoutes(v1, c)
		setupLeadRoutes(v1, c)
		setupCompanyRoutes(v1, c)
	}

	return router
}

// ========================================
// POST ROUTES
// ========================================
// Read routes là public; draft visibility được quyết định bên trong
// handler dựa trên admin header. Write routes yêu cầu header đúng.
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/:slug", c.PostHandler.GetPost)

		admin := posts.Group("")
		admin.Use(middleware.AdminAuth(c.Config.Admin.Secret))
		{
			admin.POST("", c.PostHandler.CreatePost)
			admin.PUT("/:slug", c.PostHandler.UpdatePost)
			admin.DELETE("/:slug", c.PostHandler.DeletePost)
		}
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.AdminAuth(c.Config.Admin.Secret))
	{
		uploads.POST("/cover", c.PostHandler.UploadCover)
	}
}

// ========================================
// LEAD ROUTES
// ========================================
func setupLeadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	leads := v1.Group("/leads")
	{
		// Public intake endpoint cho website forms
		leads.POST("", c.LeadHandler.CaptureLead)

		admin := leads.Group("")
		admin.Use(middleware.AdminAuth(c.Config.Admin.Secret))
		{
			admin.GET("", c.LeadHandler.ListLeads)
			admin.GET("/:id", c.LeadHandler.GetLead)
		}
	}
}

// ========================================
// COMPANY ROUTES
// ========================================
func setupCompanyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	companies := v1.Group("/companies")
	{
		companies.GET("", c.CompanyHandler.SearchCompanies)
		companies.GET("/:id", c.CompanyHandler.GetCompany)

		admin := companies.Group("")
		admin.Use(middleware.AdminAuth(c.Config.Admin.Secret))
		{
			admin.POST("/import", c.CompanyHandler.ImportCompanies)
		}
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis (non-critical)
		redisStatus := "ok"
		if appCtx.Redis == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
