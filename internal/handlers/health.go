package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. No upstream checks here: the gateway is up even
// when the record store is not, and its handlers say so per request.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "driver-management-gateway"})
}
