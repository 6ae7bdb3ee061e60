package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type Handler struct {
	service SessionService
}

func NewHandler(s SessionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var row PracticeSession
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.CreateSession(r.Context(), claims.UserID, &row)
	if err != nil {
		log.WithError(err).Error("Failed to create practice session")
		config.Error(w, http.StatusInternalServerError, "failed to save practice session")
		return
	}

	config.JSON(w, http.StatusCreated, saved)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.service.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list practice sessions")
		config.Error(w, http.StatusInternalServerError, "failed to list practice sessions")
		return
	}

	config.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	row, err := h.service.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			config.Error(w, http.StatusNotFound, "session not found")
		case errors.Is(err, ErrInvalidID):
			config.Error(w, http.StatusBadRequest, "invalid session id")
		default:
			log.WithError(err).Error("Failed to load practice session")
			config.Error(w, http.StatusInternalServerError, "failed to load practice session")
		}
		return
	}

	config.JSON(w, http.StatusOK, row)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateSession(r.Context(), claims.UserID, chi.URLParam(r, "id"), dto); err != nil {
		if errors.Is(err, ErrInvalidID) {
			config.Error(w, http.StatusBadRequest, "invalid session id")
			return
		}
		log.WithError(err).Error("Failed to update practice session")
		config.Error(w, http.StatusInternalServerError, "failed to update practice session")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "session updated"})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.DeleteSession(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrInvalidID) {
			config.Error(w, http.StatusBadRequest, "invalid session id")
			return
		}
		log.WithError(err).Error("Failed to delete practice session")
		config.Error(w, http.StatusInternalServerError, "failed to delete practice session")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "session deleted"})
}
