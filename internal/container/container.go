package container

import (
	"context"
	"log"
	"os"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
	"github.com/Kamaal2002/interviewai-prepbot/internal/events"
	"github.com/Kamaal2002/interviewai-prepbot/internal/extract"
	"github.com/Kamaal2002/interviewai-prepbot/internal/generation"
	"github.com/Kamaal2002/interviewai-prepbot/internal/health"
	"github.com/Kamaal2002/interviewai-prepbot/internal/progress"
	"github.com/Kamaal2002/interviewai-prepbot/internal/session"
	"github.com/Kamaal2002/interviewai-prepbot/internal/userfile"
)

type Container struct {
	GenerationContainer *generation.GenerationContainer
	ExtractContainer    *extract.ExtractContainer
	SessionContainer    *session.SessionContainer
	ProgressContainer   *progress.ProgressContainer
	UserFileContainer   *userfile.UserFileContainer
	HealthHandler       *health.Handler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.Migrate(
		&session.PracticeSession{},
		&progress.UserProgress{},
		&userfile.UserFile{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	publisher := events.NewPublisherFromEnv()

	var notifier session.Notifier
	if publisher != nil {
		notifier = publisher
	}

	sessionContainer := session.NewSessionContainer(config.DB, notifier)
	generationContainer := generation.NewGenerationContainer(sessionContainer.Service)
	userFileContainer := userfile.NewUserFileContainer(config.DB)
	extractContainer := extract.NewExtractContainer(userFileContainer.Repo)
	progressContainer := progress.NewProgressContainer(config.DB)

	return &Container{
		GenerationContainer: generationContainer,
		ExtractContainer:    extractContainer,
		SessionContainer:    sessionContainer,
		ProgressContainer:   progressContainer,
		UserFileContainer:   userFileContainer,
		HealthHandler:       health.NewHandler(),
	}
}
