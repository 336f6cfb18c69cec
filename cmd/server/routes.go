package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mlservice/server/api/rest/health"
	"github.com/mlservice/server/api/rest/info"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine) {
	router.Use(CORSMiddleware())

	router.GET("/", info.Handler)
	router.GET("/health", health.Handler)
}
