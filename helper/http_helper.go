package helper

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"stakegulf-cms/models"
)

const (
	codeTypeSuccess      = `success`
	codeTypeBadRequest   = `badRequest`
	codeTypeConflict     = `conflict`
	codeTypeUnauthorized = `unAuthorized`
	codeTypeForbidden    = `forbidden`
	codeTypeNotFound     = `notFound`
	codeTypeValidation   = `validationError`
	codeTypeInternal     = `internalServerError`

	internalErrorMessage = `Internal server error.`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Message  string
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper renders every response in the {code, code_type, code_message, data} envelope.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        *slog.Logger
}

// NewHTTPHelper wires a validator that reports fields by their json name and
// translates messages to English.
func NewHTTPHelper(log *slog.Logger) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Error("failed to register validator translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans, Log: log}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		badRequest   models.ErrorBadRequest
		conflict     models.ErrorConflict
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		notFound     models.ErrorNotFound
		internal     models.ErrorInternalServer
	)
	switch {
	case errors.As(err, &badRequest), errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &internal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send a typed service error to consumers. Anything untyped is logged and
// reported as a generic 500.
func (u *HTTPHelper) SendError(c *gin.Context, err error) error {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		u.logger().ErrorContext(c.Request.Context(), "request failed",
			"error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		return u.SendResponse(u.SetResponse(c, internalErrorMessage, u.EmptyJsonMap(), code, codeTypeInternal))
	}

	codeType := codeTypeBadRequest
	var conflict models.ErrorConflict
	switch {
	case errors.As(err, &conflict):
		codeType = codeTypeConflict
	case code == http.StatusUnauthorized:
		codeType = codeTypeUnauthorized
	case code == http.StatusForbidden:
		codeType = codeTypeForbidden
	case code == http.StatusNotFound:
		codeType = codeTypeNotFound
	}
	return u.SendResponse(u.SetResponse(c, err.Error(), u.EmptyJsonMap(), code, codeType))
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, message, data, code, codeType}
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusBadRequest, codeTypeBadRequest))
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         http.StatusBadRequest,
		"code_type":    codeTypeValidation,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusUnauthorized, codeTypeUnauthorized))
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusForbidden, codeTypeForbidden))
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusNotFound, codeTypeNotFound))
}

// SendInternalError ...
// Send the generic 500 response to consumers.
func (u *HTTPHelper) SendInternalError(c *gin.Context) error {
	return u.SendResponse(u.SetResponse(c, internalErrorMessage, u.EmptyJsonMap(), http.StatusInternalServerError, codeTypeInternal))
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusOK, codeTypeSuccess))
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, message, data, http.StatusCreated, codeTypeSuccess))
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

// BindJSON decodes and validates the request body into req. On failure the
// error response has already been sent and false is returned.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Invalid request body.", u.EmptyJsonMap())
		return false
	}
	return u.validate(c, req)
}

// BindQuery is BindJSON for query strings.
func (u *HTTPHelper) BindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		u.SendBadRequest(c, "Invalid query parameters.", u.EmptyJsonMap())
		return false
	}
	return u.validate(c, req)
}

func (u *HTTPHelper) validate(c *gin.Context, req interface{}) bool {
	if u.Validate == nil {
		return true
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		return false
	}
	return true
}

// ParamID parses a numeric path parameter, answering 400 when it is not one.
func (u *HTTPHelper) ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		u.SendBadRequest(c, "Invalid "+name+".", u.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func (u *HTTPHelper) logger() *slog.Logger {
	if u.Log == nil {
		return slog.Default()
	}
	return u.Log
}
