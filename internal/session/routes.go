package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateSession)
	r.Get("/", h.ListSessions)
	r.Get("/{id}", h.GetSession)
	r.Patch("/{id}", h.UpdateSession)
	r.Delete("/{id}", h.DeleteSession)
	return r
}
