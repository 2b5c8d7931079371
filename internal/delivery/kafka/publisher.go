package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher turns every accepted charity payload into a SubmissionEvent.
type Publisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
	newID  func() string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &Publisher{writer: w, topic: topic, now: time.Now, newID: uuid.NewString}
}

func (p *Publisher) CharitySubmitted(ctx context.Context, payload models.CharityPayload) error {
	ev := models.SubmissionEvent{
		EventID:     p.newID(),
		Action:      models.ActionCreate,
		SubmittedAt: p.now().UTC(),
		Charity:     payload,
	}
	if payload.ID != nil {
		id := *payload.ID
		ev.Action = models.ActionUpdate
		ev.CharityID = &id
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode submission event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(ev.EventID),
		Value:   body,
		Headers: []kafka.Header{{Key: "x-action", Value: []byte(ev.Action)}},
	})
	if err != nil {
		return fmt.Errorf("publish submission %s: %w", ev.EventID, err)
	}
	logrus.WithFields(logrus.Fields{"event": ev.EventID, "topic": p.topic}).Debug("submission published")
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
