package handler

import (
	"net/http"
	"time"

	"eso-store-web/pkg/response"
)

// Handler serves the gateway status endpoint.
type Handler struct {
	startedAt time.Time
}

// New creates a new status handler.
func New() *Handler {
	return &Handler{startedAt: time.Now()}
}

// Status handles GET /api/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
