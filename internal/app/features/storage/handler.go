// internal/app/features/storage/handler.go
package storage

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler proxies file access: existence-check through the
// administrative client, then redirect to the remote store's own
// view/download URL. File bytes never pass through this layer.
type Handler struct {
	Log   *zap.Logger
	Files *appwrite.Storage
}

func NewHandler(files *appwrite.Storage, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, Files: files}
}

func (h *Handler) redirectTo(urlFor func(string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID := chi.URLParam(r, "fileId")
		if fileID == "" {
			httpapi.Validation(w, "File ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if _, err := h.Files.GetFile(ctx, fileID); err != nil {
			if !appwrite.IsNotFound(err) {
				h.Log.Error("file lookup failed", zap.String("file_id", fileID), zap.Error(err))
			}
			httpapi.MapRemote(w, err, "File")
			return
		}

		http.Redirect(w, r, urlFor(fileID), http.StatusTemporaryRedirect)
	}
}

// HandleView handles GET /storage/{fileId}/view.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.redirectTo(h.Files.ViewURL)(w, r)
}

// HandleDownload handles GET /storage/{fileId}/download.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	h.redirectTo(h.Files.DownloadURL)(w, r)
}
