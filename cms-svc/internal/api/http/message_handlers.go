package httpapi

import (
	"net/http"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !decodeJSON(w, r, &msg) {
		return
	}

	if err := h.Messages.SubmitContact(r.Context(), &msg); err != nil {
		serviceError(w, r, "contact message", err)
		return
	}
	writeMessage(w, http.StatusOK, "Contact message sent successfully")
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &payload) {
		return
	}

	already, err := h.Messages.Subscribe(r.Context(), payload.Email)
	if err != nil {
		serviceError(w, r, "subscriber", err)
		return
	}
	if already {
		writeMessage(w, http.StatusOK, "Email already subscribed")
		return
	}
	writeMessage(w, http.StatusOK, "Newsletter subscription successful")
}

func (h *Handler) listContact(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.ListContact(r.Context())
	if err != nil {
		serviceError(w, r, "contact message", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) markContactRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.MarkRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, "contact message", err)
		return
	}
	writeMessage(w, http.StatusOK, "Message marked as read")
}

func (h *Handler) listSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Messages.ListSubscribers(r.Context())
	if err != nil {
		serviceError(w, r, "subscriber", err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
