package httpapi

import (
	"context"
	"net/http"

	"tapasbar-cms/cms-svc/internal/content"
	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Reviews  service.ReviewServiceInterface
	Auth     service.AuthServiceInterface
	Users    service.UserServiceInterface
	Messages service.MessageServiceInterface
	Content  service.ContentServiceInterface
	Admin    service.AdminServiceInterface
	Health   func(ctx context.Context) error
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/menu/items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu/items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/items", h.require(domain.CapMenuWrite, h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu/items/{id}", h.require(domain.CapMenuWrite, h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu/items/{id}", h.require(domain.CapMenuWrite, h.deleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/api/reviews", h.listReviews).Methods("GET")
	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews/stats", h.reviewStats).Methods("GET")
	r.HandleFunc("/api/reviews/qrcode", h.reviewQRCode).Methods("GET")
	r.HandleFunc("/api/reviews/{id}/approval", h.require(domain.CapModerateReviews, h.setReviewApproval)).Methods("PUT")
	r.HandleFunc("/api/reviews/{id}", h.require(domain.CapModerateReviews, h.deleteReview)).Methods("DELETE")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/me", h.authenticated(h.me)).Methods("GET")

	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
	r.HandleFunc("/api/newsletter/subscribe", h.subscribe).Methods("POST")

	for _, key := range content.PageKeys() {
		r.HandleFunc("/api/cms/"+key, h.getContent(key)).Methods("GET")
		r.HandleFunc("/api/cms/"+key, h.require(domain.CapContentWrite, h.putContent(key))).Methods("PUT")
	}
	r.HandleFunc("/api/cms/website-texts/{section}", h.getWebsiteTexts).Methods("GET")
	r.HandleFunc("/api/cms/website-texts/{section}", h.require(domain.CapContentWrite, h.putWebsiteTexts)).Methods("PUT")

	r.HandleFunc("/api/users", h.require(domain.CapManageUsers, h.listUsers)).Methods("GET")
	r.HandleFunc("/api/users", h.require(domain.CapManageUsers, h.createUser)).Methods("POST")
	r.HandleFunc("/api/users/{id}", h.require(domain.CapManageUsers, h.updateUser)).Methods("PUT")
	r.HandleFunc("/api/users/{id}", h.require(domain.CapManageUsers, h.deleteUser)).Methods("DELETE")

	r.HandleFunc("/api/admin/contact", h.require(domain.CapReadMessages, h.listContact)).Methods("GET")
	r.HandleFunc("/api/admin/contact/{id}/read", h.require(domain.CapReadMessages, h.markContactRead)).Methods("PUT")
	r.HandleFunc("/api/admin/newsletter/subscribers", h.require(domain.CapReadMessages, h.listSubscribers)).Methods("GET")

	r.HandleFunc("/api/admin/audit", h.require(domain.CapManageSystem, h.auditLog)).Methods("GET")
	r.HandleFunc("/api/admin/backup/list", h.require(domain.CapManageSystem, h.listBackups)).Methods("GET")
	r.HandleFunc("/api/admin/backup/create", h.require(domain.CapManageSystem, h.createBackup)).Methods("POST")
	r.HandleFunc("/api/admin/backup/restore", h.require(domain.CapManageSystem, h.restoreBackup)).Methods("POST")
	r.HandleFunc("/api/admin/system/info", h.require(domain.CapManageSystem, h.systemInfo)).Methods("GET")
	r.HandleFunc("/api/admin/database/config", h.require(domain.CapManageSystem, h.databaseConfig)).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
