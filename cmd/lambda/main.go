package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/Kamaal2002/interviewai-prepbot/internal/container"
	"github.com/Kamaal2002/interviewai-prepbot/internal/router"
)

// The on-demand deployment target. Same router, same core contract; only the
// transport differs from cmd/server.
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

	adapter := httpadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
