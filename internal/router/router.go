package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
	"github.com/Kamaal2002/interviewai-prepbot/internal/extract"
	"github.com/Kamaal2002/interviewai-prepbot/internal/generation"
	"github.com/Kamaal2002/interviewai-prepbot/internal/health"
	"github.com/Kamaal2002/interviewai-prepbot/internal/middlewares"
	"github.com/Kamaal2002/interviewai-prepbot/internal/progress"
	"github.com/Kamaal2002/interviewai-prepbot/internal/session"
	"github.com/Kamaal2002/interviewai-prepbot/internal/userfile"
)

type RouterConfig struct {
	GenerationHandler *generation.Handler
	ExtractHandler    *extract.Handler
	SessionHandler    *session.Handler
	ProgressHandler   *progress.Handler
	UserFileHandler   *userfile.Handler
	HealthHandler     *health.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Health)

		r.Mount("/generate-questions", generation.Routes(cfg.GenerationHandler))
		r.Mount("/extract-text", extract.Routes(cfg.ExtractHandler))
		r.Mount("/sessions", session.Routes(cfg.SessionHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/files", userfile.Routes(cfg.UserFileHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	return r
}
