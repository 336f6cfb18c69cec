package info

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName   = "ml-service"
	statusMessage = "running"
)

// returns the service banner
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Service: serviceName,
		Message: statusMessage,
	})
}
