package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tapasbar-cms/logger"
	"tapasbar-cms/notify-svc/internal/domain"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader   MessageReader
	Store    StoreInterface
	Notifier Notifier
}

// NewConsumer wires a consumer; notifier may be nil when Telegram is not configured.
func NewConsumer(reader MessageReader, store StoreInterface, notifier Notifier) *Consumer {
	return &Consumer{
		Reader:   reader,
		Store:    store,
		Notifier: notifier,
	}
}

// Start reads events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log := logger.GetLogger()
	log.Info("Starting notification consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Notification consumer stopped")
				return
			}
			log.Errorw("Error reading message", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var ev domain.Event
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Warnw("Error unmarshaling event", "offset", message.Offset, "error", err)
			continue
		}
		if err := c.ProcessEvent(ctx, ev); err != nil {
			log.Errorw("Error processing event", "type", ev.Type, "entity", ev.EntityID, "error", err)
		}
	}
}

// ProcessEvent records the event in the action log and forwards guest-facing
// events to the notifier. The notification is sent even when the log insert
// fails; notification failures are logged only.
func (c *Consumer) ProcessEvent(ctx context.Context, ev domain.Event) error {
	if ev.Type == "" {
		return fmt.Errorf("event without type")
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	insertErr := c.Store.InsertAction(ctx, ev)

	if c.Notifier != nil && Notifiable(ev.Type) {
		if err := c.Notifier.Notify(ctx, ev); err != nil {
			logger.GetLogger().Warnw("Notification failed", "type", ev.Type, "entity", ev.EntityID, "error", err)
		}
	}

	if insertErr != nil {
		return fmt.Errorf("insert action: %w", insertErr)
	}
	return nil
}

func Notifiable(eventType string) bool {
	return eventType == domain.EventContactReceived || eventType == domain.EventReviewSubmitted
}
