package httpapi

import (
	"net/http"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	if includeInactive {
		var ok bool
		if r, ok = h.authorizeOptional(w, r, domain.CapMenuWrite); !ok {
			return
		}
	}

	items, err := h.Menu.List(r.Context(), includeInactive)
	if err != nil {
		serviceError(w, r, "menu item", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, r, "menu item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if !decodeJSON(w, r, &item) {
		return
	}

	if err := h.Menu.Create(r.Context(), actorOf(r), &item); err != nil {
		serviceError(w, r, "menu item", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Menu item created successfully",
		"id":      item.ID,
		"item":    item,
	})
}

// menuItemUpdate tells an omitted is_active apart from an explicit false.
type menuItemUpdate struct {
	domain.MenuItem
	IsActive *bool `json:"is_active"`
}

// updateMenuItem overwrites the item. An omitted is_active keeps the stored
// value.
func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload menuItemUpdate
	if !decodeJSON(w, r, &payload) {
		return
	}
	item := payload.MenuItem
	item.ID = mux.Vars(r)["id"]

	if payload.IsActive != nil {
		item.IsActive = *payload.IsActive
	} else {
		current, err := h.Menu.Get(r.Context(), item.ID)
		if err != nil {
			serviceError(w, r, "menu item", err)
			return
		}
		item.IsActive = current.IsActive
	}

	if err := h.Menu.Update(r.Context(), actorOf(r), &item); err != nil {
		serviceError(w, r, "menu item", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Menu item updated successfully",
		"item":    item,
	})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), actorOf(r), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, "menu item", err)
		return
	}
	writeMessage(w, http.StatusOK, "Menu item deleted successfully")
}
