package service

import (
	"context"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/logger"
)

// publish sends an event when a publisher is configured. Failures are logged
// and never surface to the caller.
func publish(ctx context.Context, p EventPublisher, eventType, entityID, actor string, payload any) {
	if p == nil {
		return
	}
	ev := domain.NewEvent(eventType, entityID, actor, payload)
	if err := p.PublishEvent(ctx, ev); err != nil {
		logger.GetLogger().Warnw("event publish failed", "type", eventType, "entity", entityID, "error", err)
	}
}
