package userfile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type Handler struct {
	repo UserFileRepository
}

func NewHandler(repo UserFileRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	files, err := h.repo.ListByUser(claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list user files")
		config.Error(w, http.StatusInternalServerError, "failed to list files")
		return
	}

	config.JSON(w, http.StatusOK, files)
}

func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		config.Error(w, http.StatusBadRequest, "file id required")
		return
	}

	if err := h.repo.Delete(fileID, claims.UserID); err != nil {
		log.WithError(err).Error("Failed to delete user file")
		config.Error(w, http.StatusInternalServerError, "failed to delete file")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "file deleted"})
}
