package session

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type SessionRepository interface {
	Create(s *PracticeSession) error
	GetByID(id, userID string) (*PracticeSession, error)
	ListByUser(userID string) ([]*PracticeSession, error)
	Update(id, userID string, updates map[string]interface{}) error
	Delete(id, userID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(s *PracticeSession) error {
	sealInputs(s)
	return r.db.Create(s).Error
}

func (r *sessionRepository) GetByID(id, userID string) (*PracticeSession, error) {
	var s PracticeSession
	if err := r.db.First(&s, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	openInputs(&s)
	return &s, nil
}

func (r *sessionRepository) ListByUser(userID string) ([]*PracticeSession, error) {
	var sessions []*PracticeSession
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	for _, s := range sessions {
		openInputs(s)
	}
	return sessions, nil
}

func (r *sessionRepository) Update(id, userID string, updates map[string]interface{}) error {
	return r.db.Model(&PracticeSession{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
}

func (r *sessionRepository) Delete(id, userID string) error {
	return r.db.Delete(&PracticeSession{}, "id = ? AND user_id = ?", id, userID).Error
}

// sealInputs encrypts the free-text inputs at rest when a crypto key is
// configured. Resume text is PII; the question payload stays queryable.
func sealInputs(s *PracticeSession) {
	if !config.CryptoEnabled() {
		return
	}
	if s.ResumeText != "" {
		if enc, err := config.Encrypt(s.ResumeText); err == nil {
			s.ResumeText = enc
		}
	}
	if s.JobDescriptionText != "" {
		if enc, err := config.Encrypt(s.JobDescriptionText); err == nil {
			s.JobDescriptionText = enc
		}
	}
}

// openInputs reverses sealInputs. Rows written before encryption was enabled
// fail to decode and are returned as stored.
func openInputs(s *PracticeSession) {
	if !config.CryptoEnabled() {
		return
	}
	if s.ResumeText != "" {
		if dec, err := config.Decrypt(s.ResumeText); err == nil && dec != "" {
			s.ResumeText = dec
		}
	}
	if s.JobDescriptionText != "" {
		if dec, err := config.Decrypt(s.JobDescriptionText); err == nil && dec != "" {
			s.JobDescriptionText = dec
		}
	}
}
