package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stakegulf-cms/config"
	"stakegulf-cms/models"
	"stakegulf-cms/server"
	"stakegulf-cms/services"
)

var testJWT = config.JWTConfig{Secret: []byte("route-gate-secret"), Expiration: time.Hour}

func newTestServer(t *testing.T) (*server.Server, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := config.Config{Env: "test", GinMode: "test", JWT: testJWT}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.New(cfg, db, log, services.WithSynchronousDispatch()), mock
}

// expectSession answers the user lookup AuthMiddleware performs for the token.
func expectSession(mock sqlmock.Sqlmock, id uint, role models.Role) {
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "is_active"}).
			AddRow(id, string(role)+"-user", string(role)+"@example.com", "hash", string(role), true))
}

func bearer(t *testing.T, id uint) string {
	t.Helper()
	token, err := services.NewJWTTokenService(testJWT).Generate(id)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouteGates(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		method  string
		path    string
		body    string
		want    int
		message string
	}{
		{"anonymous platform create", "", http.MethodPost, "/api/platforms", `{"name":"x","slug":"x"}`, http.StatusUnauthorized, "Access denied. No token provided."},
		{"anonymous guide update", "", http.MethodPut, "/api/guides/1", `{"status":"published"}`, http.StatusUnauthorized, "Access denied. No token provided."},
		{"anonymous page create", "", http.MethodPost, "/api/pages", `{}`, http.StatusUnauthorized, "Access denied. No token provided."},
		{"anonymous notifications", "", http.MethodGet, "/api/notifications", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"writer page create", models.RoleWriter, http.MethodPost, "/api/pages", `{"title":"About","slug":"about"}`, http.StatusForbidden, "Insufficient permissions."},
		{"writer page update", models.RoleWriter, http.MethodPut, "/api/pages/1", `{"status":"draft"}`, http.StatusForbidden, "Insufficient permissions."},
		{"viewer page create", models.RoleViewer, http.MethodPost, "/api/pages", `{}`, http.StatusForbidden, "Insufficient permissions."},
		{"admin settings all", models.RoleAdmin, http.MethodGet, "/api/settings/all", "", http.StatusForbidden, "Insufficient permissions."},
		{"admin settings update", models.RoleAdmin, http.MethodPut, "/api/settings/site_name", `{"value":"x"}`, http.StatusForbidden, "Insufficient permissions."},
		{"admin settings create", models.RoleAdmin, http.MethodPost, "/api/settings", `{"key":"x"}`, http.StatusForbidden, "Insufficient permissions."},
		{"admin user delete", models.RoleAdmin, http.MethodDelete, "/api/users/9", "", http.StatusForbidden, "Insufficient permissions."},
		{"editor user list", models.RoleEditor, http.MethodGet, "/api/users", "", http.StatusForbidden, "Insufficient permissions."},
		{"editor user create", models.RoleEditor, http.MethodPost, "/api/users", `{}`, http.StatusForbidden, "Insufficient permissions."},
		{"editor roles list", models.RoleEditor, http.MethodGet, "/api/users/roles/list", "", http.StatusForbidden, "Insufficient permissions."},
		{"editor platform delete", models.RoleEditor, http.MethodDelete, "/api/platforms/5", "", http.StatusForbidden, "Insufficient permissions."},
		{"writer guide delete", models.RoleWriter, http.MethodDelete, "/api/guides/5", "", http.StatusForbidden, "Insufficient permissions."},
		{"writer news delete", models.RoleWriter, http.MethodDelete, "/api/news/5", "", http.StatusForbidden, "Insufficient permissions."},
		{"editor top list delete", models.RoleEditor, http.MethodDelete, "/api/top-lists/5", "", http.StatusForbidden, "Insufficient permissions."},
		{"editor page delete", models.RoleEditor, http.MethodDelete, "/api/pages/5", "", http.StatusForbidden, "Insufficient permissions."},
		{"admin roles list", models.RoleAdmin, http.MethodGet, "/api/users/roles/list", "", http.StatusOK, "Roles loaded"},
		{"superadmin roles list", models.RoleSuperadmin, http.MethodGet, "/api/users/roles/list", "", http.StatusOK, "Roles loaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mock := newTestServer(t)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			if tt.role != "" {
				expectSession(mock, 3, tt.role)
				req.Header.Set("Authorization", bearer(t, 3))
			}

			w := httptest.NewRecorder()
			srv.Engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			var res struct {
				Code        int    `json:"code"`
				CodeMessage string `json:"code_message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.want, res.Code)
			assert.Equal(t, tt.message, res.CodeMessage)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestPreflightAndUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/guides", nil)
	req.Header.Set("Origin", "https://admin.stakegulf.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.stakegulf.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil)
	w = httptest.NewRecorder()
	srv.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}
