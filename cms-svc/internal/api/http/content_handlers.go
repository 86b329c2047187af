package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"tapasbar-cms/cms-svc/internal/content"

	"github.com/gorilla/mux"
)

func (h *Handler) getContent(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeContent(w, r, key)
	}
}

func (h *Handler) putContent(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.storeContent(w, r, key)
	}
}

func (h *Handler) getWebsiteTexts(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	if !content.ValidSection(section) {
		writeError(w, http.StatusNotFound, "Section '"+section+"' not found")
		return
	}
	h.writeContent(w, r, content.WebsiteTextsKey(section))
}

func (h *Handler) putWebsiteTexts(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	if !content.ValidSection(section) {
		writeError(w, http.StatusBadRequest, "Invalid section name")
		return
	}
	h.storeContent(w, r, content.WebsiteTextsKey(section))
}

func (h *Handler) writeContent(w http.ResponseWriter, r *http.Request, key string) {
	data, err := h.Content.Get(r.Context(), key)
	if err != nil {
		serviceError(w, r, "content '"+key+"'", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) storeContent(w http.ResponseWriter, r *http.Request, key string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	block, err := h.Content.Put(r.Context(), actorOf(r), key, json.RawMessage(body))
	if err != nil {
		serviceError(w, r, "content '"+key+"'", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Content '" + key + "' updated successfully",
		"data":       block.Data,
		"updated_at": block.UpdatedAt,
		"updated_by": block.UpdatedBy,
	})
}
