package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrInactiveUser):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes the mapped status for err. resource names the entity
// in 404 messages. Internal errors are only spelled out to authenticated
// callers.
func serviceError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	status := errorStatus(err)
	var detail string
	switch status {
	case http.StatusNotFound:
		detail = capitalize(resource) + " not found"
	case http.StatusBadRequest:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			detail = verr.Error()
		} else {
			detail = err.Error()
		}
	case http.StatusUnauthorized:
		detail = unauthorizedDetail(err)
	case http.StatusForbidden:
		if errors.Is(err, domain.ErrInactiveUser) {
			detail = "User account is inactive"
		} else {
			detail = "Insufficient permissions"
		}
	case http.StatusConflict:
		detail = capitalize(resource) + " already exists"
	case http.StatusTooManyRequests:
		detail = "Too many login attempts, please try again later"
	default:
		logger.GetLogger().Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		if _, ok := IdentityFrom(r.Context()); ok {
			detail = err.Error()
		} else {
			detail = "Internal server error"
		}
	}
	writeError(w, status, detail)
}

func unauthorizedDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	default:
		return "Invalid token"
	}
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
