package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
	"github.com/Kamaal2002/interviewai-prepbot/internal/container"
	"github.com/Kamaal2002/interviewai-prepbot/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		GenerationHandler: c.GenerationContainer.Handler,
		ExtractHandler:    c.ExtractContainer.Handler,
		SessionHandler:    c.SessionContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
		UserFileHandler:   c.UserFileContainer.Handler,
		HealthHandler:     c.HealthHandler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log := config.Logger()
	log.Infof("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
