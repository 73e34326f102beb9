package helper_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakegulf-cms/helper"
	"stakegulf-cms/models"
)

func newHelper() *helper.HTTPHelper {
	return helper.NewHTTPHelper(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetStatusCode(t *testing.T) {
	h := newHelper()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"bad request", models.ErrorBadRequest{Message: "x"}, http.StatusBadRequest},
		{"conflict", models.ErrorConflict{Message: "x"}, http.StatusBadRequest},
		{"unauthorized", models.ErrorUnauthorized{Message: "x"}, http.StatusUnauthorized},
		{"forbidden", models.ErrorForbidden{Message: "x"}, http.StatusForbidden},
		{"not found", models.ErrorNotFound{Message: "x"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", models.ErrorNotFound{Message: "x"}), http.StatusNotFound},
		{"internal", models.ErrorInternalServer{Message: "Internal server error.", Err: errors.New("boom")}, http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.GetStatusCode(tt.err))
		})
	}
}

func sendError(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/guides/1", nil)

	newHelper().SendError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSendErrorHidesInternalDetails(t *testing.T) {
	code, body := sendError(t, errors.New(`pq: relation "guides" does not exist`))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error.", body["code_message"])
	assert.NotContains(t, body["code_message"], "relation")
}

func TestSendErrorWrappedDriverFailure(t *testing.T) {
	err := models.ErrorInternalServer{Message: "Internal server error.", Err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
	code, body := sendError(t, err)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internalServerError", body["code_type"])
	assert.Equal(t, "Internal server error.", body["code_message"])
}

func TestSendErrorConflictIsBadRequest(t *testing.T) {
	code, body := sendError(t, models.ErrorConflict{Message: "Slug already exists"})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "conflict", body["code_type"])
	assert.Equal(t, "Slug already exists", body["code_message"])
	assert.EqualValues(t, http.StatusBadRequest, body["code"])
}

func TestBindJSONReportsFieldsByJSONName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(`{"value":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.CreateSettingRequest
	ok := newHelper().BindJSON(c, &req)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		CodeType    string              `json:"code_type"`
		CodeMessage map[string][]string `json:"code_message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validationError", body.CodeType)
	assert.Contains(t, body.CodeMessage, "key")
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/guides", strings.NewReader(`{"title":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.GuideRequest
	assert.False(t, newHelper().BindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body.")
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok := newHelper().ParamID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id.")
}
