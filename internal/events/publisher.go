package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/streadway/amqp"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

const exchange = "session_updates"

// Publisher pushes session lifecycle notifications to RabbitMQ so downstream
// consumers (progress dashboards, mail) can react. Everything here is
// best-effort; the API never blocks on it.
type Publisher struct {
	conn *amqp.Connection
}

// NewPublisherFromEnv connects using RABBITMQ_URL and returns nil when it is
// unset, which turns event publication off.
func NewPublisherFromEnv() *Publisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		config.Logger().WithError(err).Warn("Failed to connect to RabbitMQ, event publication disabled")
		return nil
	}

	return &Publisher{conn: conn}
}

type sessionCreatedEvent struct {
	UserID        string    `json:"user_id"`
	SessionID     string    `json:"session_id"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func (p *Publisher) SessionCreated(ctx context.Context, userID, sessionID string, questionCount int) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(sessionCreatedEvent{
		UserID:        userID,
		SessionID:     sessionID,
		QuestionCount: questionCount,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	routingKey := fmt.Sprintf("session.%s", sessionID)
	return ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
