// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/config"
	_ "github.com/VA7DBI/frameworkAPI/docs"
	"github.com/VA7DBI/frameworkAPI/metrics"
	"github.com/VA7DBI/frameworkAPI/middleware"
	"github.com/VA7DBI/frameworkAPI/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	configFile = flag.String("config", "config.yaml", "Path to configuration file")
)

// @title           Framework API Service
// @version         1.0
// @description     User accounts and per-user framework records behind bearer-token authentication.
// @host            api.openradiomap.com
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := store.NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	denylist, err := auth.NewRedisDenylist(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer denylist.Close()

	codec := auth.NewCodec(cfg.Auth.SecretKey, time.Duration(cfg.Auth.AccessTokenTTL)*time.Minute)
	gate := auth.NewGate(denylist, codec, db)
	sessions := auth.NewSessions(codec, denylist, db)
	service := NewAPIService(cfg, db, sessions)

	r := gin.Default()
	registerRoutes(r, cfg, service, gate)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	r.Run(addr)
}

func registerRoutes(r *gin.Engine, cfg *config.Config, service *APIService, gate *auth.Gate) {
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RequestDuration.WithLabelValues(c.FullPath()).Observe(time.Since(start).Seconds())
	})

	bearer := middleware.BearerAuth(gate)

	// Session lifecycle
	r.POST("/auth/token", service.LoginHandler)
	r.POST("/auth/revoke_token", bearer, service.LogoutHandler)
	r.POST("/auth/refresh_token", bearer, service.RefreshHandler)

	// Users: registration and listing are public, the rest is owner-only
	r.GET("/users", service.ListUsersHandler)
	r.POST("/users", service.CreateUserHandler)
	r.PUT("/users/:id", bearer, service.UpdateUserHandler)
	r.DELETE("/users/:id", bearer, service.DeleteUserHandler)
	r.PUT("/users/restore/:id", bearer, service.RestoreUserHandler)

	// Frameworks, all ownership-scoped
	frameworks := r.Group("/frameworks", bearer)
	frameworks.GET("", service.ListFrameworksHandler)
	frameworks.GET("/:id", service.GetFrameworkHandler)
	frameworks.POST("", service.CreateFrameworkHandler)
	frameworks.PUT("/:id", service.UpdateFrameworkHandler)
	frameworks.DELETE("/:id", service.DeleteFrameworkHandler)

	// These endpoints remain public
	r.GET("/health", healthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Add Prometheus metrics endpoint if enabled
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// @Summary     Health check endpoint
// @Description Get API health status
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(200, HealthResponse{Status: "ok"})
}
