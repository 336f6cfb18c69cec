package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mlservice/server/internal/config"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	router *gin.Engine
}
