package httpserver

import (
	"github.com/gin-gonic/gin"

	"task-intake-service/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI Service is running"
	HealthVersion = "1.0.0"
	ServiceName   = "task-intake-service"
)

type rootResp struct {
	Message string `json:"message" example:"AI Service is running"`
}

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

// rootCheck reports that the service is up.
// @Summary Root
// @Description Fixed status message
// @Tags Health
// @Produce json
// @Success 200 {object} rootResp
// @Router / [get]
func (srv *HTTPServer) rootCheck(c *gin.Context) {
	response.OK(c, rootResp{Message: HealthMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck returns ready once the server accepts requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}

func newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}
