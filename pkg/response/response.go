package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "myshop/pkg/errors"
	"myshop/pkg/logger"
)

// ErrorBody is the JSON payload of every failed request.
type ErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Success relays data unchanged with status 200. Store results are passed
// through as-is so clients see the same documents and acknowledgements the
// store produced.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Text writes a plain-text 200 response.
func Text(c echo.Context, body string) error {
	return c.String(http.StatusOK, body)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr)
		}
		return c.JSON(appErr.Status, ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	logger.Error("%s %s: unexpected error: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}

// InvalidURL is the catch-all body for requests no route matches.
func InvalidURL(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorBody{
		Message: fmt.Sprintf("the requested url is invalid : [%s]", c.Request().URL.RequestURI()),
	})
}

// HTTPErrorHandler is the terminal responder installed on the echo instance.
// Unmatched routes, including method mismatches on known paths, answer with
// the invalid url message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		var writeErr error
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			writeErr = InvalidURL(c)
		default:
			writeErr = c.JSON(he.Code, ErrorBody{Message: fmt.Sprint(he.Message)})
		}
		if writeErr != nil {
			logger.Error("failed to write error response: %v", writeErr)
		}
		return
	}

	if writeErr := Error(c, err); writeErr != nil {
		logger.Error("failed to write error response: %v", writeErr)
	}
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := err.Field()
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Code:    "VALIDATION_ERROR",
			Message: message,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid input data",
	})
}
