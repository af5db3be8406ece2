// internal/app/features/groups/systemmessage.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/sanitize"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type systemMessageRequest struct {
	Type     string `json:"type"`
	UserName string `json:"userName"`
}

// HandleSystemMessage handles POST /groups/{id}/system-message.
//
// Trusted-caller endpoint: the platform itself authors these messages
// when membership changes. Content is a pure function of (type,
// userName); join and leave have fixed phrasing, any other type passes
// through literally.
func (h *Handler) HandleSystemMessage(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		httpapi.Validation(w, "Group ID is required")
		return
	}

	var req systemMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Validation(w, "Invalid request body")
		return
	}
	userName := sanitize.Text(req.UserName)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := h.Messages.Create(ctx, models.Message{
		Content:           models.SystemMessageContent(req.Type, userName),
		GroupID:           groupID,
		SenderID:          "system",
		SenderName:        "System",
		Timestamp:         time.Now().UTC(),
		IsSystemMessage:   true,
		SystemMessageType: req.Type,
		SystemMessageUser: userName,
	})
	if err != nil {
		h.Log.Error("system message creation failed",
			zap.String("group_id", groupID), zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, viewMessage(m))
}
