package domain

import (
	"encoding/json"
	"time"
)

const (
	EventMenuItemCreated     = "menu_item.created"
	EventMenuItemUpdated     = "menu_item.updated"
	EventMenuItemDeleted     = "menu_item.deleted"
	EventReviewSubmitted     = "review.submitted"
	EventReviewModerated     = "review.moderated"
	EventReviewDeleted       = "review.deleted"
	EventContactReceived     = "contact.received"
	EventNewsletterSubscribe = "newsletter.subscribed"
	EventContentUpdated      = "content.updated"
	EventUserCreated         = "user.created"
	EventUserUpdated         = "user.updated"
	EventUserDeleted         = "user.deleted"
	EventLoginSucceeded      = "auth.login_succeeded"
	EventLoginFailed         = "auth.login_failed"
	EventBackupCreated       = "backup.created"
	EventBackupRestored      = "backup.restored"
)

// ContentEvent is the JSON message written to the events topic.
type ContentEvent struct {
	Type      string          `json:"type"`
	EntityID  string          `json:"entity_id"`
	Actor     string          `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

func NewEvent(eventType, entityID, actor string, payload any) ContentEvent {
	ev := ContentEvent{
		Type:      eventType,
		EntityID:  entityID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			ev.Payload = raw
		}
	}
	return ev
}
