package generation

import (
	"context"
	"os"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

type GenerationContainer struct {
	Handler *Handler
	Service Service
}

func NewGenerationContainer(store SessionStore) *GenerationContainer {
	provider := newProviderFromEnv()
	service := NewService(provider, store)
	handler := NewHandler(service)

	return &GenerationContainer{
		Handler: handler,
		Service: service,
	}
}

func newProviderFromEnv() Provider {
	if os.Getenv("MODEL_PROVIDER") == "gemini" {
		provider, err := NewGeminiProvider(context.Background())
		if err != nil {
			config.Logger().WithError(err).Warn("Gemini provider unavailable, falling back to OpenAI")
		} else {
			return provider
		}
	}
	return NewOpenAIProvider()
}
