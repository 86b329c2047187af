package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "tapasbar-cms/cms-svc/internal/api/http"
	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	menu     *mocks.MenuServiceInterface
	reviews  *mocks.ReviewServiceInterface
	auth     *mocks.AuthServiceInterface
	users    *mocks.UserServiceInterface
	messages *mocks.MessageServiceInterface
	content  *mocks.ContentServiceInterface
	admin    *mocks.AdminServiceInterface
}

var (
	adminIdentity    = &domain.Identity{ID: "11111111-1111-1111-1111-111111111111", Username: "admin", Role: domain.RoleAdmin, IsActive: true}
	editorIdentity   = &domain.Identity{ID: "22222222-2222-2222-2222-222222222222", Username: "editor", Role: domain.RoleEditor, IsActive: true}
	viewerIdentity   = &domain.Identity{ID: "33333333-3333-3333-3333-333333333333", Username: "viewer", Role: domain.RoleViewer, IsActive: true}
	inactiveIdentity = &domain.Identity{ID: "44444444-4444-4444-4444-444444444444", Username: "retired", Role: domain.RoleAdmin, IsActive: false}
)

func setupTestRouter(t *testing.T) (http.Handler, *handlerMocks) {
	m := &handlerMocks{
		menu:     mocks.NewMenuServiceInterface(t),
		reviews:  mocks.NewReviewServiceInterface(t),
		auth:     mocks.NewAuthServiceInterface(t),
		users:    mocks.NewUserServiceInterface(t),
		messages: mocks.NewMessageServiceInterface(t),
		content:  mocks.NewContentServiceInterface(t),
		admin:    mocks.NewAdminServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Menu:     m.menu,
		Reviews:  m.reviews,
		Auth:     m.auth,
		Users:    m.users,
		Messages: m.messages,
		Content:  m.content,
		Admin:    m.admin,
	}
	return httpapi.NewRouter(handler, []string{"*"}), m
}

// as makes the bearer token "<name>-token" resolve to id.
func (m *handlerMocks) as(id *domain.Identity) string {
	token := id.Username + "-token"
	m.auth.On("Authenticate", mock.Anything, token).Return(id, nil).Once()
	return token
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func detailOf(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	detail, _ := body["detail"].(string)
	return detail
}

func TestHandler_listMenuItems(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		path         string
		token        func() string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:  "public_active_only",
			path:  "/api/menu/items",
			token: func() string { return "" },
			prepareMocks: func() {
				m.menu.On("List", mock.Anything, false).
					Return([]domain.MenuItem{{ID: "a", Name: "Patatas Bravas", IsActive: true}}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "inactive_requires_token",
			path:         "/api/menu/items?include_inactive=true",
			token:        func() string { return "" },
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "inactive_forbidden_for_viewer",
			path:         "/api/menu/items?include_inactive=true",
			token:        func() string { return m.as(viewerIdentity) },
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "inactive_for_editor",
			path:  "/api/menu/items?include_inactive=true",
			token: func() string { return m.as(editorIdentity) },
			prepareMocks: func() {
				m.menu.On("List", mock.Anything, true).Return([]domain.MenuItem{}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "storage_failure_hides_detail",
			path:  "/api/menu/items",
			token: func() string { return "" },
			prepareMocks: func() {
				m.menu.On("List", mock.Anything, false).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "GET", testCase.path, testCase.token(), "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", detailOf(t, recorder))
			}
		})
	}
}

func TestHandler_createMenuItem(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		token        func() string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:         "no_token",
			payload:      `{"name":"Tortilla","price":"6,90€","category":"TAPAS"}`,
			token:        func() string { return "" },
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "viewer_forbidden",
			payload:      `{"name":"Tortilla","price":"6,90€","category":"TAPAS"}`,
			token:        func() string { return m.as(viewerIdentity) },
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
			expectedBody: "Insufficient permissions",
		},
		{
			name:         "inactive_user",
			payload:      `{"name":"Tortilla","price":"6,90€","category":"TAPAS"}`,
			token:        func() string { return m.as(inactiveIdentity) },
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
			expectedBody: "User account is inactive",
		},
		{
			name:    "success",
			payload: `{"name":"Tortilla","price":"6,90€","category":"TAPAS"}`,
			token:   func() string { return m.as(editorIdentity) },
			prepareMocks: func() {
				m.menu.On("Create", mock.Anything, "editor", mock.AnythingOfType("*domain.MenuItem")).
					Run(func(args mock.Arguments) {
						args.Get(2).(*domain.MenuItem).ID = "new-id"
					}).
					Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"new-id"`,
		},
		{
			name:    "validation_error",
			payload: `{"name":"Tortilla","category":"TAPAS"}`,
			token:   func() string { return m.as(editorIdentity) },
			prepareMocks: func() {
				m.menu.On("Create", mock.Anything, "editor", mock.Anything).
					Return(domain.Invalid("price", "is required")).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "price: is required",
		},
		{
			name:         "invalid_json",
			payload:      `not json`,
			token:        func() string { return m.as(editorIdentity) },
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/menu/items", testCase.token(), testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_updateMenuItem(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("missing_item_is_404", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.menu.On("Update", mock.Anything, "admin", mock.Anything).
			Return(domain.ErrNotFound).Once()

		recorder := doRequest(router, "PUT", "/api/menu/items/missing", token,
			`{"name":"Gambas","price":"9,90€","category":"TAPAS DE PESCADO","is_active":true}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Menu item not found", detailOf(t, recorder))
	})

	t.Run("missing_item_without_active_flag_is_404", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.menu.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

		recorder := doRequest(router, "PUT", "/api/menu/items/missing", token,
			`{"name":"Gambas","price":"9,90€","category":"TAPAS DE PESCADO"}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("omitted_active_keeps_stored_value", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.menu.On("Get", mock.Anything, "abc").
			Return(&domain.MenuItem{ID: "abc", Name: "Gambas", IsActive: false}, nil).Once()
		m.menu.On("Update", mock.Anything, "admin", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.ID == "abc" && !item.IsActive && item.Price == "10,50€"
		})).Return(nil).Once()

		recorder := doRequest(router, "PUT", "/api/menu/items/abc", token,
			`{"id":"ignored","name":"Gambas","price":"10,50€","category":"TAPAS DE PESCADO"}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Menu item updated successfully")
	})

	t.Run("explicit_deactivate", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.menu.On("Update", mock.Anything, "admin", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.ID == "abc" && !item.IsActive
		})).Return(nil).Once()

		recorder := doRequest(router, "PUT", "/api/menu/items/abc", token,
			`{"name":"Gambas","price":"9,90€","category":"TAPAS DE PESCADO","is_active":false}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("explicit_activate", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.menu.On("Update", mock.Anything, "admin", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.ID == "abc" && item.IsActive
		})).Return(nil).Once()

		recorder := doRequest(router, "PUT", "/api/menu/items/abc", token,
			`{"name":"Gambas","price":"9,90€","category":"TAPAS DE PESCADO","is_active":true}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_deleteMenuItem(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		prepareMocks func()
		expectedCode int
	}{
		{
			name: "success",
			prepareMocks: func() {
				m.menu.On("Delete", mock.Anything, "admin", "abc").Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not_found",
			prepareMocks: func() {
				m.menu.On("Delete", mock.Anything, "admin", "abc").Return(domain.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			token := m.as(adminIdentity)
			testCase.prepareMocks()
			recorder := doRequest(router, "DELETE", "/api/menu/items/abc", token, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_reviews(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("submit", func(t *testing.T) {
		m.reviews.On("Submit", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
			return r.CustomerName == "Ana" && r.Rating == 5 && !r.IsApproved
		})).Return(nil).Once()

		recorder := doRequest(router, "POST", "/api/reviews", "",
			`{"customer_name":"Ana","rating":5,"comment":"Muy bien","is_approved":true}`)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("submit_invalid_rating", func(t *testing.T) {
		m.reviews.On("Submit", mock.Anything, mock.Anything).
			Return(domain.Invalid("rating", "must be between 1 and 5")).Once()

		recorder := doRequest(router, "POST", "/api/reviews", "", `{"customer_name":"Ana","rating":9}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("public_list_is_approved_only", func(t *testing.T) {
		m.reviews.On("List", mock.Anything, true, 0).Return([]domain.Review{}, nil).Once()

		recorder := doRequest(router, "GET", "/api/reviews", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unapproved_requires_moderator", func(t *testing.T) {
		recorder := doRequest(router, "GET", "/api/reviews?approved_only=false", "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		token := m.as(editorIdentity)
		m.reviews.On("List", mock.Anything, false, 50).Return([]domain.Review{}, nil).Once()
		recorder = doRequest(router, "GET", "/api/reviews?approved_only=false&limit=50", token, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("bad_limit", func(t *testing.T) {
		recorder := doRequest(router, "GET", "/api/reviews?limit=zero", "", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("stats", func(t *testing.T) {
		m.reviews.On("Stats", mock.Anything).Return(&domain.ReviewStats{
			Total: 2, Average: 4.5, Distribution: map[string]int{"4": 1, "5": 1},
		}, nil).Once()

		recorder := doRequest(router, "GET", "/api/reviews/stats", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"average":4.5`)
	})

	t.Run("qrcode", func(t *testing.T) {
		m.reviews.On("QRCode", "Neustadt").Return([]byte("\x89PNG"), nil).Once()

		recorder := doRequest(router, "GET", "/api/reviews/qrcode?location=Neustadt", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	})

	t.Run("approval_requires_flag", func(t *testing.T) {
		token := m.as(editorIdentity)
		recorder := doRequest(router, "PUT", "/api/reviews/r1/approval", token, `{}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("approve", func(t *testing.T) {
		token := m.as(editorIdentity)
		m.reviews.On("SetApproval", mock.Anything, "editor", "r1", true).
			Return(&domain.Review{ID: "r1", IsApproved: true}, nil).Once()

		recorder := doRequest(router, "PUT", "/api/reviews/r1/approval", token, `{"is_approved":true}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("delete_forbidden_for_viewer", func(t *testing.T) {
		token := m.as(viewerIdentity)
		recorder := doRequest(router, "DELETE", "/api/reviews/r1", token, "")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestHandler_login(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"username":"admin","password":"jimmy2024"}`,
			prepareMocks: func() {
				m.auth.On("Login", mock.Anything, "admin", "jimmy2024").
					Return(&domain.Token{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 3600}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"token_type":"bearer"`,
		},
		{
			name:    "wrong_password",
			payload: `{"username":"admin","password":"nope"}`,
			prepareMocks: func() {
				m.auth.On("Login", mock.Anything, "admin", "nope").
					Return(nil, domain.ErrInvalidCredentials).Once()
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Invalid credentials",
		},
		{
			name:    "throttled",
			payload: `{"username":"admin","password":"nope"}`,
			prepareMocks: func() {
				m.auth.On("Login", mock.Anything, "admin", "nope").
					Return(nil, domain.ErrTooManyAttempts).Once()
			},
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name:    "inactive",
			payload: `{"username":"retired","password":"password1"}`,
			prepareMocks: func() {
				m.auth.On("Login", mock.Anything, "retired", "password1").
					Return(nil, domain.ErrInactiveUser).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "bad_body",
			payload:      `{`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/auth/login", "", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_me(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("no_token", func(t *testing.T) {
		recorder := doRequest(router, "GET", "/api/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"))
	})

	t.Run("expired_token", func(t *testing.T) {
		m.auth.On("Authenticate", mock.Anything, "stale").Return(nil, domain.ErrInvalidToken).Once()
		recorder := doRequest(router, "GET", "/api/auth/me", "stale", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Invalid token", detailOf(t, recorder))
	})

	t.Run("deleted_user", func(t *testing.T) {
		m.auth.On("Authenticate", mock.Anything, "orphan").Return(nil, domain.ErrUserNotFound).Once()
		recorder := doRequest(router, "GET", "/api/auth/me", "orphan", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "User not found", detailOf(t, recorder))
	})

	t.Run("editor", func(t *testing.T) {
		token := m.as(editorIdentity)
		recorder := doRequest(router, "GET", "/api/auth/me", token, "")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "editor", body["username"])
		assert.Contains(t, body["capabilities"], string(domain.CapMenuWrite))
		assert.NotContains(t, body["capabilities"], string(domain.CapManageUsers))
	})
}

func TestHandler_newsletterAndContact(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		path         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "new_subscriber",
			path:    "/api/newsletter/subscribe",
			payload: `{"email":"ana@example.com"}`,
			prepareMocks: func() {
				m.messages.On("Subscribe", mock.Anything, "ana@example.com").Return(false, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Newsletter subscription successful",
		},
		{
			name:    "duplicate_subscriber",
			path:    "/api/newsletter/subscribe",
			payload: `{"email":"ana@example.com"}`,
			prepareMocks: func() {
				m.messages.On("Subscribe", mock.Anything, "ana@example.com").Return(true, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Email already subscribed",
		},
		{
			name:    "invalid_email",
			path:    "/api/newsletter/subscribe",
			payload: `{"email":"nope"}`,
			prepareMocks: func() {
				m.messages.On("Subscribe", mock.Anything, "nope").
					Return(false, domain.Invalid("email", "is not a valid address")).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "contact",
			path:    "/api/contact",
			payload: `{"name":"Ana","email":"ana@example.com","subject":"Reserva","message":"Mesa para 4"}`,
			prepareMocks: func() {
				m.messages.On("SubmitContact", mock.Anything, mock.MatchedBy(func(msg *domain.ContactMessage) bool {
					return msg.Subject == "Reserva"
				})).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Contact message sent successfully",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", testCase.path, "", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_cms(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("get_page", func(t *testing.T) {
		m.content.On("Get", mock.Anything, "homepage").
			Return(json.RawMessage(`{"hero":{"title":"JIMMY'S TAPAS BAR"}}`), nil).Once()

		recorder := doRequest(router, "GET", "/api/cms/homepage", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"hero":{"title":"JIMMY'S TAPAS BAR"}}`, recorder.Body.String())
	})

	t.Run("unknown_website_texts_section", func(t *testing.T) {
		m.content.On("Get", mock.Anything, "website-texts/specials").Return(nil, domain.ErrNotFound).Once()

		recorder := doRequest(router, "GET", "/api/cms/website-texts/specials", "", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed_section_name", func(t *testing.T) {
		recorder := doRequest(router, "GET", "/api/cms/website-texts/Bad.Section", "", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("put_requires_auth", func(t *testing.T) {
		recorder := doRequest(router, "PUT", "/api/cms/homepage", "", `{"hero":{}}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("put_persists", func(t *testing.T) {
		token := m.as(editorIdentity)
		m.content.On("Put", mock.Anything, "editor", "delivery-info", json.RawMessage(`{"enabled":true}`)).
			Return(&domain.ContentBlock{Key: "delivery-info", Data: json.RawMessage(`{"enabled":true}`), UpdatedBy: "editor"}, nil).Once()

		recorder := doRequest(router, "PUT", "/api/cms/delivery-info", token, `{"enabled":true}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"updated_by":"editor"`)
	})

	t.Run("put_invalid_json", func(t *testing.T) {
		token := m.as(editorIdentity)
		recorder := doRequest(router, "PUT", "/api/cms/homepage", token, `{"hero":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("put_website_texts", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.content.On("Put", mock.Anything, "admin", "website-texts/footer", mock.Anything).
			Return(&domain.ContentBlock{Key: "website-texts/footer", Data: json.RawMessage(`{}`)}, nil).Once()

		recorder := doRequest(router, "PUT", "/api/cms/website-texts/footer", token, `{"copyright":"2024"}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_users(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("editor_cannot_list", func(t *testing.T) {
		token := m.as(editorIdentity)
		recorder := doRequest(router, "GET", "/api/users", token, "")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin_creates", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.users.On("Create", mock.Anything, "admin", domain.UserInput{
			Username: "maria", Email: "maria@example.com", Password: "secret123", Role: domain.RoleEditor,
		}).Return(&domain.User{ID: "u1", Username: "maria", Role: domain.RoleEditor, IsActive: true}, nil).Once()

		recorder := doRequest(router, "POST", "/api/users", token,
			`{"username":"maria","email":"maria@example.com","password":"secret123","role":"editor"}`)
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("duplicate_username", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.users.On("Create", mock.Anything, "admin", mock.Anything).
			Return(nil, domain.ErrDuplicateKey).Once()

		recorder := doRequest(router, "POST", "/api/users", token,
			`{"username":"admin","email":"a@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("cannot_delete_self", func(t *testing.T) {
		token := m.as(adminIdentity)
		recorder := doRequest(router, "DELETE", "/api/users/"+adminIdentity.ID, token, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("delete_missing", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.users.On("Delete", mock.Anything, "admin", "gone").Return(domain.ErrNotFound).Once()

		recorder := doRequest(router, "DELETE", "/api/users/gone", token, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "User not found", detailOf(t, recorder))
	})
}

func TestHandler_admin(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("viewer_reads_messages", func(t *testing.T) {
		token := m.as(viewerIdentity)
		m.messages.On("ListContact", mock.Anything).Return([]domain.ContactMessage{{ID: "c1"}}, nil).Once()

		recorder := doRequest(router, "GET", "/api/admin/contact", token, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("mark_read_missing", func(t *testing.T) {
		token := m.as(viewerIdentity)
		m.messages.On("MarkRead", mock.Anything, "c9").Return(domain.ErrNotFound).Once()

		recorder := doRequest(router, "PUT", "/api/admin/contact/c9/read", token, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("editor_cannot_backup", func(t *testing.T) {
		token := m.as(editorIdentity)
		recorder := doRequest(router, "POST", "/api/admin/backup/create", token, "")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("restore_needs_filename", func(t *testing.T) {
		token := m.as(adminIdentity)
		recorder := doRequest(router, "POST", "/api/admin/backup/restore", token, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("restore_from_body", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.admin.On("RestoreBackup", mock.Anything, "admin", "backup_20240101_120000.sql").Return(nil).Once()

		recorder := doRequest(router, "POST", "/api/admin/backup/restore", token,
			`{"filename":"backup_20240101_120000.sql"}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("restore_missing_file", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.admin.On("RestoreBackup", mock.Anything, "admin", "backup_20240101_120000.sql").Return(domain.ErrNotFound).Once()

		recorder := doRequest(router, "POST", "/api/admin/backup/restore?filename=backup_20240101_120000.sql", token, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("backup_failure_is_explained_to_admin", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.admin.On("CreateBackup", mock.Anything, "admin").Return(nil, errors.New("pg_dump: not found")).Once()

		recorder := doRequest(router, "POST", "/api/admin/backup/create", token, "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, detailOf(t, recorder), "pg_dump")
	})

	t.Run("system_info", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.admin.On("SystemInfo", mock.Anything).Return(domain.SystemInfo{Version: "Jimmy's CMS v1.0"}).Once()

		recorder := doRequest(router, "GET", "/api/admin/system/info", token, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Jimmy's CMS v1.0")
	})

	t.Run("database_config_has_no_password", func(t *testing.T) {
		token := m.as(adminIdentity)
		m.admin.On("DatabaseConfig").Return(domain.DatabaseConfig{Host: "db", Port: 5432, Username: "jimmy"}).Once()

		recorder := doRequest(router, "GET", "/api/admin/database/config", token, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "password")
	})
}

func TestHandler_healthAndMetrics(t *testing.T) {
	handler := &httpapi.Handler{
		Health: func(ctx context.Context) error { return errors.New("dial tcp: refused") },
	}
	router := httpapi.NewRouter(handler, nil)

	recorder := doRequest(router, "GET", "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = doRequest(router, "GET", "/metrics", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "cms_http_requests_total")
}
