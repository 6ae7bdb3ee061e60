package generation

import (
	"context"
	"errors"
	"time"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

var ErrNoInput = errors.New("resume text or job description is required")

// SessionStore persists one practice session per successful generation. It is
// best-effort from this package's point of view: a failed save never
// downgrades a successful generation.
type SessionStore interface {
	SaveGenerated(ctx context.Context, userID string, req GenerateRequest, questions []Question) error
}

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider Provider
	store    SessionStore
}

func NewService(provider Provider, store SessionStore) Service {
	return &service{provider: provider, store: store}
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	if req.ResumeText == "" && req.JobDescription == "" {
		return nil, ErrNoInput
	}
	req.applyDefaults()

	completion, err := s.provider.Complete(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		log.WithError(err).Error("Model completion failed")
		return nil, err
	}

	questions, err := ParseQuestions(completion)
	if err != nil {
		log.WithError(err).Error("Failed to parse model completion")
		return nil, err
	}

	if req.UserID != "" && s.store != nil {
		if err := s.store.SaveGenerated(ctx, req.UserID, req, questions); err != nil {
			log.WithError(err).Warn("Failed to save practice session, returning questions anyway")
		}
	}

	return &GenerateResponse{
		Success:     true,
		Questions:   questions,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
