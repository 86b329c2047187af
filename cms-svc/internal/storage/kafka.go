package storage

import (
	"context"
	"encoding/json"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishEvent(ctx context.Context, ev domain.ContentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.EntityID),
		Value: payload,
	})
}
