package progress

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type Handler struct {
	repo ProgressRepository
}

func NewHandler(repo ProgressRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.repo.GetByUser(claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user progress")
		config.Error(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	if p == nil {
		config.Error(w, http.StatusNotFound, "no progress recorded")
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) UpsertProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpsertProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	current, err := h.repo.GetByUser(claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user progress")
		config.Error(w, http.StatusInternalServerError, "failed to update progress")
		return
	}
	if current == nil {
		current = &UserProgress{UserID: uuid.MustParse(claims.UserID)}
	}

	if dto.TotalSessions != nil {
		current.TotalSessions = *dto.TotalSessions
	}
	if dto.TotalQuestions != nil {
		current.TotalQuestions = *dto.TotalQuestions
	}
	if dto.AverageScore != nil {
		current.AverageScore = *dto.AverageScore
	}
	if dto.StreakDays != nil {
		current.StreakDays = *dto.StreakDays
	}
	if dto.LastPracticeDate != nil {
		current.LastPracticeDate = dto.LastPracticeDate
	}

	if err := h.repo.Upsert(current); err != nil {
		log.WithError(err).Error("Failed to upsert user progress")
		config.Error(w, http.StatusInternalServerError, "failed to update progress")
		return
	}

	config.JSON(w, http.StatusOK, current)
}
