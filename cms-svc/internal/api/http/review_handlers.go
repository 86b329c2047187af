package httpapi

import (
	"net/http"
	"strconv"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	approvedOnly := true
	if raw := q.Get("approved_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "approved_only must be a boolean")
			return
		}
		approvedOnly = v
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}

	if !approvedOnly {
		var ok bool
		if r, ok = h.authorizeOptional(w, r, domain.CapModerateReviews); !ok {
			return
		}
	}

	reviews, err := h.Reviews.List(r.Context(), approvedOnly, limit)
	if err != nil {
		serviceError(w, r, "review", err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerName string `json:"customer_name"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}
	if !decodeJSON(w, r, &payload) {
		return
	}

	review := domain.Review{
		CustomerName: payload.CustomerName,
		Rating:       payload.Rating,
		Comment:      payload.Comment,
	}
	if err := h.Reviews.Submit(r.Context(), &review); err != nil {
		serviceError(w, r, "review", err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) reviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reviews.Stats(r.Context())
	if err != nil {
		serviceError(w, r, "review", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) reviewQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Reviews.QRCode(r.URL.Query().Get("location"))
	if err != nil {
		serviceError(w, r, "qr code", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) setReviewApproval(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IsApproved *bool `json:"is_approved"`
	}
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.IsApproved == nil {
		writeError(w, http.StatusBadRequest, "is_approved is required")
		return
	}

	review, err := h.Reviews.SetApproval(r.Context(), actorOf(r), mux.Vars(r)["id"], *payload.IsApproved)
	if err != nil {
		serviceError(w, r, "review", err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Reviews.Delete(r.Context(), actorOf(r), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, "review", err)
		return
	}
	writeMessage(w, http.StatusOK, "Review deleted successfully")
}
