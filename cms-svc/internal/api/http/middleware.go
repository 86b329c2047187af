package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/logger"

	"github.com/gorilla/mux"
)

type identityKey struct{}

func withIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*domain.Identity)
	return id, ok && id != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// identify resolves the bearer token, if any. ok is false only when a token
// was supplied and rejected; the response has then been written.
func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	token, present := bearerToken(r)
	if !present {
		return nil, true
	}
	id, err := h.Auth.Authenticate(r.Context(), token)
	if err != nil {
		serviceError(w, r, "user", err)
		return nil, false
	}
	return id, true
}

// authenticated rejects requests without a valid token or from inactive users.
func (h *Handler) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.identify(w, r)
		if !ok {
			return
		}
		if id == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !id.IsActive {
			serviceError(w, r, "user", domain.ErrInactiveUser)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), id)))
	}
}

// require additionally checks that the caller's role grants capability c.
func (h *Handler) require(c domain.Capability, next http.HandlerFunc) http.HandlerFunc {
	return h.authenticated(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFrom(r.Context())
		if err := id.Authorize(c); err != nil {
			logger.GetLogger().Warnw("access denied", "user", id.Username, "role", id.Role, "capability", c)
			serviceError(w, r, "user", err)
			return
		}
		next(w, r)
	})
}

// authorizeOptional gates an elevated variant of a public route.
func (h *Handler) authorizeOptional(w http.ResponseWriter, r *http.Request, c domain.Capability) (*http.Request, bool) {
	id, ok := h.identify(w, r)
	if !ok {
		return r, false
	}
	if id == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return r, false
	}
	if err := id.Authorize(c); err != nil {
		serviceError(w, r, "user", err)
		return r, false
	}
	return r.WithContext(withIdentity(r.Context(), id)), true
}

func actorOf(r *http.Request) string {
	if id, ok := IdentityFrom(r.Context()); ok {
		return id.Username
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.GetLogger().Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
