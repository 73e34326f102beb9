package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/mocks"
	"stakegulf-cms/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveWithAuth(auth *mocks.AuthService, header string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := helper.NewHTTPHelper(discardLogger())

	router := gin.New()
	router.GET("/", middleware.AuthMiddleware(auth, h), func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"username": c.GetString(middleware.ContextUsername),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["code_message"].(string)
	return msg
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	auth := new(mocks.AuthService)

	for _, header := range []string{"", "Token abc", "Bearer "} {
		w := serveWithAuth(auth, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "Access denied. No token provided.", decodeMessage(t, w))
	}
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"expired", models.ErrorUnauthorized{Message: "Token expired."}, http.StatusUnauthorized, "Token expired."},
		{"invalid", models.ErrorUnauthorized{Message: "Invalid token."}, http.StatusUnauthorized, "Invalid token."},
		{"deleted user", models.ErrorUnauthorized{Message: "User not found."}, http.StatusUnauthorized, "User not found."},
		{"deactivated", models.ErrorForbidden{Message: "Account is deactivated."}, http.StatusForbidden, "Account is deactivated."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.AuthService)
			auth.On("Authenticate", mock.Anything, "tok").Return(nil, tt.err)

			w := serveWithAuth(auth, "Bearer tok")

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.message, decodeMessage(t, w))
		})
	}
}

func TestAuthMiddleware_StoresUser(t *testing.T) {
	auth := new(mocks.AuthService)
	auth.On("Authenticate", mock.Anything, "good").
		Return(&models.User{ID: 7, Username: "alice", Role: models.RoleEditor, IsActive: true}, nil)

	w := serveWithAuth(auth, "Bearer good")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "alice", body["username"])
	auth.AssertExpectations(t)
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
