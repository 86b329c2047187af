package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.Admin.AuditLog(r.Context(), limit)
	if err != nil {
		serviceError(w, r, "audit entry", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.Admin.ListBackups(r.Context())
	if err != nil {
		serviceError(w, r, "backup", err)
		return
	}
	writeJSON(w, http.StatusOK, backups)
}

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	file, err := h.Admin.CreateBackup(r.Context(), actorOf(r))
	if err != nil {
		serviceError(w, r, "backup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Backup created successfully",
		"filename": file.Filename,
		"backup":   file,
	})
}

// restoreBackup takes the file name from ?filename= or a JSON body.
func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" && r.ContentLength != 0 {
		var payload struct {
			Filename string `json:"filename"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		filename = payload.Filename
	}
	if filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	if err := h.Admin.RestoreBackup(r.Context(), actorOf(r), filename); err != nil {
		serviceError(w, r, "backup file", err)
		return
	}
	writeMessage(w, http.StatusOK, "Backup restored successfully")
}

func (h *Handler) systemInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.SystemInfo(r.Context()))
}

func (h *Handler) databaseConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.DatabaseConfig())
}
