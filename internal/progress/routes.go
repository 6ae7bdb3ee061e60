package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kamaal2002/interviewai-prepbot/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.GetProgress)
	r.Put("/", h.UpsertProgress)
	return r
}
