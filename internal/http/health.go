package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthHealthy   = "healthy"
	healthUnhealthy = "unhealthy"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	store   Pinger
	version string
}

// NewHealthController creates the probe endpoints. A nil store reports the
// service as unhealthy.
func NewHealthController(store Pinger, version string) *HealthController {
	return &HealthController{store: store, version: version}
}

// Status reports database reachability
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	dbCheck, ok := h.checkStore()

	resp := HealthResponse{
		Status:  healthHealthy,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.version,
		Checks:  map[string]string{"database": dbCheck},
	}
	code := http.StatusOK
	if !ok {
		resp.Status = healthUnhealthy
		code = http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, resp)
}

// Ping is a liveness probe that never touches the database
// GET /ping
func (h *HealthController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (h *HealthController) checkStore() (string, bool) {
	if h.store == nil {
		return "not configured", false
	}
	if err := h.store.Ping(); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}
