package handler

import (
	"net/http"

	"glowkart/internal/model"
	"glowkart/internal/service"

	"github.com/rs/zerolog"
)

// VideoHandler handles video content requests.
type VideoHandler struct {
	videos service.VideoService
	logger zerolog.Logger
}

// NewVideoHandler creates a new video handler.
func NewVideoHandler(videos service.VideoService, logger zerolog.Logger) *VideoHandler {
	return &VideoHandler{
		videos: videos,
		logger: logger.With().Str("handler", "video").Logger(),
	}
}

// ListPublic handles GET /api/videos.
func (h *VideoHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListPublic(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, videos)
}

// ListAdmin handles GET /api/admin/videos.
func (h *VideoHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListAdmin(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, videos)
}

// Create handles POST /api/admin/videos.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.VideoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	video, err := h.videos.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, video)
}

// Update handles PUT /api/admin/videos/{id}.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.VideoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	video, err := h.videos.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, video)
}

// Delete handles DELETE /api/admin/videos/{id}.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.videos.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"message": "Video deleted"})
}
