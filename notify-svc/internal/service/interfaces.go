package service

import (
	"context"

	"tapasbar-cms/notify-svc/internal/domain"
	"tapasbar-cms/notify-svc/internal/notify"
	"tapasbar-cms/notify-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	InsertAction(ctx context.Context, ev domain.Event) error
}

type Notifier interface {
	Notify(ctx context.Context, ev domain.Event) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, ev domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ Notifier          = (*notify.TelegramNotifier)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
