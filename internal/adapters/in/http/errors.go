package http

import (
	"errors"
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps the error taxonomy onto HTTP. Validation wins over the
// other classes because joined constructor errors may carry several.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// HandleError is the echo error handler for the API.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"component": "http",
			"method":    c.Request().Method,
			"path":      c.Path(),
		}).WithError(err).Error("request failed")
		message = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, Error{Code: code, Message: message})
	}
	if err != nil {
		log.WithField("component", "http").WithError(err).Warn("failed to write error response")
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
