package domain

import (
	"encoding/json"
	"time"
)

const (
	EventContactReceived = "contact.received"
	EventReviewSubmitted = "review.submitted"
)

// Event mirrors the JSON the CMS service writes to the events topic.
type Event struct {
	Type      string          `json:"type"`
	EntityID  string          `json:"entity_id"`
	Actor     string          `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ReviewPayload struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}
