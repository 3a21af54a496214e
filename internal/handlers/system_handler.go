package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves liveness and build information.
type SystemHandler struct {
	version     string
	environment string
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(version, environment string) *SystemHandler {
	return &SystemHandler{version: version, environment: environment}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse reports the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// Health handles the liveness probe.
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} HealthResponse "Service is up"
// @Router      /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Version handles reporting the build version.
// @Summary     Version
// @Tags        system
// @Produce     json
// @Success     200 {object} VersionResponse "Build information"
// @Router      /version [get]
func (h *SystemHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Version: h.version, Environment: h.environment})
}
