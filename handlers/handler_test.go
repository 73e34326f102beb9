package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stakegulf-cms/handlers"
	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/mocks"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

type response struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage string          `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

func newTestHelper() *helper.HTTPHelper {
	return helper.NewHTTPHelper(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// withUser stands in for AuthMiddleware.
func withUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUser, user)
		c.Next()
	}
}

func serve(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var res response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w, res
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := new(mocks.AuthService)
	auth.On("Login", mock.Anything, models.LoginRequest{Username: "dana", Password: "secret1"}).
		Return(&models.AuthResponse{Token: "tok", User: models.User{ID: 1, Username: "dana"}}, nil)
	auth.On("Login", mock.Anything, models.LoginRequest{Username: "dana", Password: "wrong"}).
		Return(nil, models.ErrorUnauthorized{Message: "Invalid credentials."})

	router := gin.New()
	router.POST("/api/auth/login", handlers.NewAuthHandler(auth, newTestHelper()).Login)

	w, res := serve(t, router, http.MethodPost, "/api/auth/login", `{"username":"dana","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var payload models.AuthResponse
	require.NoError(t, json.Unmarshal(res.Data, &payload))
	assert.Equal(t, "tok", payload.Token)
	assert.Equal(t, "dana", payload.User.Username)

	w, res = serve(t, router, http.MethodPost, "/api/auth/login", `{"username":"dana","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", res.CodeMessage)

	w, res = serve(t, router, http.MethodPost, "/api/auth/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", res.CodeMessage)

	auth.AssertExpectations(t)
}

func TestProfileNeverExposesPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := &models.User{ID: 7, Username: "dana", Password: "$2a$10$hash", Role: models.RoleEditor}
	router := gin.New()
	router.GET("/api/auth/me", withUser(user), handlers.NewAuthHandler(new(mocks.AuthService), newTestHelper()).GetProfile)

	w, res := serve(t, router, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(res.Data), "password")
	assert.NotContains(t, string(res.Data), "$2a$10$hash")
}

func guideRouter(repo *mocks.GuideRepository, activity *mocks.ActivityService, actor *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewGuideHandler(services.NewGuideService(repo, activity), newTestHelper())

	router := gin.New()
	router.GET("/api/guides/:identifier", h.GetGuide)
	router.PUT("/api/guides/:id", withUser(actor), h.UpdateGuide)
	router.DELETE("/api/guides/:id", withUser(actor), h.DeleteGuide)
	return router
}

func TestGetGuideBySlug(t *testing.T) {
	repo := new(mocks.GuideRepository)
	repo.On("GetByIdentifier", mock.Anything, "how-to-bet").
		Return(&models.Guide{ID: 4, Title: "How to bet", Slug: "how-to-bet"}, nil)
	repo.On("GetByIdentifier", mock.Anything, "missing").
		Return(nil, models.ErrorNotFound{Message: "Guide not found"})

	router := guideRouter(repo, new(mocks.ActivityService), nil)

	w, res := serve(t, router, http.MethodGet, "/api/guides/how-to-bet", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var guide models.Guide
	require.NoError(t, json.Unmarshal(res.Data, &guide))
	assert.Equal(t, uint(4), guide.ID)

	w, res = serve(t, router, http.MethodGet, "/api/guides/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "notFound", res.CodeType)
}

func TestUpdateGuideRejectsNonNumericID(t *testing.T) {
	repo := new(mocks.GuideRepository)
	router := guideRouter(repo, new(mocks.ActivityService), &models.User{ID: 1, Username: "ed"})

	w, res := serve(t, router, http.MethodPut, "/api/guides/how-to-bet", `{"status":"published"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id.", res.CodeMessage)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteGuideRecordsActivity(t *testing.T) {
	actor := &models.User{ID: 1, Username: "root", Role: models.RoleSuperadmin}
	repo := new(mocks.GuideRepository)
	repo.On("GetByID", mock.Anything, uint(9)).Return(&models.Guide{ID: 9, Title: "Parlays"}, nil)
	repo.On("Delete", mock.Anything, uint(9)).Return(nil)

	activity := new(mocks.ActivityService)
	activity.On("Record", mock.Anything, mock.MatchedBy(func(in services.ActivityInput) bool {
		return in.Action == services.ActionDelete && in.EntityTitle == "Parlays" && in.ActorID == actor.ID
	})).Return()

	router := guideRouter(repo, activity, actor)

	w, res := serve(t, router, http.MethodDelete, "/api/guides/9", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Guide deleted successfully", res.CodeMessage)

	repo.AssertExpectations(t)
	activity.AssertExpectations(t)
}

func TestDeleteGuideHidesStorageErrors(t *testing.T) {
	repo := new(mocks.GuideRepository)
	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, errors.New("connection refused"))

	router := guideRouter(repo, new(mocks.ActivityService), &models.User{ID: 1, Username: "root"})

	w, res := serve(t, router, http.MethodDelete, "/api/guides/9", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", res.CodeMessage)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", handlers.NewHealthHandler("test").Health)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["env"])
	assert.NotEmpty(t, body["timestamp"])
}
