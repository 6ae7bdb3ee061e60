package generation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An authenticated identity wins over whatever userId the body carries.
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		req.UserID = claims.UserID
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			config.Error(w, http.StatusBadRequest, "Resume text or job description is required")
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		if errors.Is(err, ErrUnparseable) || errors.Is(err, ErrNoQuestions) {
			config.Error(w, http.StatusInternalServerError, "Failed to parse model response")
			return
		}
		config.Error(w, http.StatusInternalServerError, "Failed to generate questions")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
