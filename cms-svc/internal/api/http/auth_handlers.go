package httpapi

import (
	"net/http"

	"tapasbar-cms/cms-svc/internal/domain"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &creds) {
		return
	}

	token, err := h.Auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		serviceError(w, r, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, struct {
		domain.Identity
		Capabilities []domain.Capability `json:"capabilities"`
	}{
		Identity:     *id,
		Capabilities: id.Role.Capabilities(),
	})
}
