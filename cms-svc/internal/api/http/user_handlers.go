package httpapi

import (
	"net/http"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		serviceError(w, r, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.Users.Create(r.Context(), actorOf(r), in)
	if err != nil {
		serviceError(w, r, "user", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.Users.Update(r.Context(), actorOf(r), mux.Vars(r)["id"], in)
	if err != nil {
		serviceError(w, r, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if caller, _ := IdentityFrom(r.Context()); caller.ID == id {
		writeError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	if err := h.Users.Delete(r.Context(), actorOf(r), id); err != nil {
		serviceError(w, r, "user", err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
