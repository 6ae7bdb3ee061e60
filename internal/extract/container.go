package extract

import (
	"context"

	"github.com/Kamaal2002/interviewai-prepbot/internal/userfile"
)

type ExtractContainer struct {
	Handler *Handler
}

func NewExtractContainer(files userfile.UserFileRepository) *ExtractContainer {
	service := NewService()
	store := NewObjectStoreFromEnv(context.Background())
	handler := NewHandler(service, store, files)

	return &ExtractContainer{
		Handler: handler,
	}
}
