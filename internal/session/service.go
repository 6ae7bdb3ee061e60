package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
	"github.com/Kamaal2002/interviewai-prepbot/internal/generation"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidID       = errors.New("invalid id format")
)

// Notifier broadcasts session lifecycle events. Delivery is best-effort.
type Notifier interface {
	SessionCreated(ctx context.Context, userID, sessionID string, questionCount int) error
}

type SessionService interface {
	generation.SessionStore

	CreateSession(ctx context.Context, userID string, s *PracticeSession) (*PracticeSession, error)
	ListByUser(ctx context.Context, userID string) ([]*PracticeSession, error)
	GetByID(ctx context.Context, userID, id string) (*PracticeSession, error)
	UpdateSession(ctx context.Context, userID, id string, dto UpdateSessionDTO) error
	DeleteSession(ctx context.Context, userID, id string) error
}

type sessionService struct {
	repo     SessionRepository
	notifier Notifier
}

func NewService(repo SessionRepository, notifier Notifier) SessionService {
	return &sessionService{repo: repo, notifier: notifier}
}

// SaveGenerated writes the backend-driven session row after a successful
// generation. One plain insert, no idempotency key: caller retries create
// duplicate rows.
func (s *sessionService) SaveGenerated(ctx context.Context, userID string, req generation.GenerateRequest, questions []generation.Question) error {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encoding questions: %w", err)
	}
	typesJSON, err := json.Marshal(req.QuestionTypes)
	if err != nil {
		return fmt.Errorf("encoding question types: %w", err)
	}

	row := &PracticeSession{
		ID:                 uuid.New(),
		UserID:             uid,
		ResumeText:         req.ResumeText,
		JobDescriptionText: req.JobDescription,
		QuestionCount:      req.QuestionCount,
		QuestionTypes:      typesJSON,
		Difficulty:         req.Difficulty,
		Questions:          questionsJSON,
		Status:             "active",
	}

	if err := s.repo.Create(row); err != nil {
		return err
	}

	log.Infof("Saved practice session %s with %d questions", row.ID, len(questions))
	s.notify(ctx, row)
	return nil
}

// CreateSession is the client-driven save path and fills its placeholder
// fields: a mock score until answer scoring exists, and a fixed duration
// label.
func (s *sessionService) CreateSession(ctx context.Context, userID string, row *PracticeSession) (*PracticeSession, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	row.UserID = uid
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Title == "" {
		row.Title = "Practice Session - " + strings.Join(decodeTypes(row.QuestionTypes), ", ")
	}
	if row.QuestionCount == 0 {
		row.QuestionCount = countQuestions(row.Questions)
	}
	if row.Score == 0 {
		row.Score = rand.Intn(30) + 70
	}
	if row.Duration == "" {
		row.Duration = "30 min"
	}
	if row.Difficulty == "" {
		row.Difficulty = "Mixed"
	}
	if row.Status == "" {
		row.Status = "active"
	}

	if err := s.repo.Create(row); err != nil {
		return nil, err
	}

	s.notify(ctx, row)
	return row, nil
}

func (s *sessionService) ListByUser(ctx context.Context, userID string) ([]*PracticeSession, error) {
	return s.repo.ListByUser(userID)
}

func (s *sessionService) GetByID(ctx context.Context, userID, id string) (*PracticeSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	row, err := s.repo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrSessionNotFound
	}
	return row, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, userID, id string, dto UpdateSessionDTO) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Score != nil {
		updates["score"] = *dto.Score
	}
	if dto.Duration != nil {
		updates["duration"] = *dto.Duration
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.Difficulty != nil {
		updates["difficulty"] = *dto.Difficulty
	}
	if len(updates) == 0 {
		return nil
	}

	return s.repo.Update(id, userID, updates)
}

func (s *sessionService) DeleteSession(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(id, userID)
}

func (s *sessionService) notify(ctx context.Context, row *PracticeSession) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SessionCreated(ctx, row.UserID.String(), row.ID.String(), row.QuestionCount); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to publish session created event")
	}
}

func decodeTypes(raw []byte) []string {
	var types []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &types)
	}
	if len(types) == 0 {
		return generation.DefaultQuestionTypes()
	}
	return types
}

func countQuestions(raw []byte) int {
	var questions []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &questions) != nil {
		return 0
	}
	return len(questions)
}
