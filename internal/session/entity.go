package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PracticeSession is one persisted generation event: the verbatim free-text
// inputs, the generated question array, and the owning user. Rows are never
// updated by the generation path itself; review and history updates go
// through the pass-through endpoints.
type PracticeSession struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title              string         `gorm:"type:text" json:"title,omitempty"`
	ResumeText         string         `gorm:"type:text" json:"resume_text,omitempty"`
	JobDescriptionText string         `gorm:"type:text" json:"job_description_text,omitempty"`
	QuestionCount      int            `gorm:"not null;default:0" json:"question_count"`
	QuestionTypes      datatypes.JSON `gorm:"type:jsonb" json:"question_types,omitempty"`
	Difficulty         string         `gorm:"type:text" json:"difficulty,omitempty"`
	Questions          datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	Score              int            `json:"score,omitempty"`
	Duration           string         `gorm:"type:text" json:"duration,omitempty"`
	Status             string         `gorm:"type:text;default:active" json:"status"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

type UpdateSessionDTO struct {
	Title      *string `json:"title"`
	Score      *int    `json:"score"`
	Duration   *string `json:"duration"`
	Status     *string `json:"status"`
	Difficulty *string `json:"difficulty"`
}
