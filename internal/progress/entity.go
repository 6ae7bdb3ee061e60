package progress

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress is one aggregate row per user, upserted by the client after a
// practice run.
type UserProgress struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalSessions    int        `gorm:"not null;default:0" json:"total_sessions"`
	TotalQuestions   int        `gorm:"not null;default:0" json:"total_questions"`
	AverageScore     float64    `gorm:"not null;default:0" json:"average_score"`
	StreakDays       int        `gorm:"not null;default:0" json:"streak_days"`
	LastPracticeDate *time.Time `json:"last_practice_date,omitempty"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

type UpsertProgressDTO struct {
	TotalSessions    *int       `json:"total_sessions"`
	TotalQuestions   *int       `json:"total_questions"`
	AverageScore     *float64   `json:"average_score"`
	StreakDays       *int       `json:"streak_days"`
	LastPracticeDate *time.Time `json:"last_practice_date"`
}
