// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Remote *appwrite.Client
	Log    *zap.Logger
}

func NewHandler(remote *appwrite.Client, logger *zap.Logger) *Handler {
	return &Handler{Remote: remote, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Remote  string `json:"remote"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 {"status":"ok","remote":"connected"}.
// On remote failure: 503 with the failure detail.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Remote.AsAdmin().Health(ctx); err != nil {
		h.Log.Error("health-check: remote store ping failed", zap.Error(err))
		httpapi.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "error",
			Remote:  "disconnected",
			Message: "Remote store unavailable",
			Error:   err.Error(),
		})
		return
	}

	httpapi.JSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Remote: "connected",
	})
}
