// Package envelope renders every API response, success or failure, in the
// same {success, message, error, data} shape.
package envelope

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Message *string     `json:"message"`
	Error   *string     `json:"error"`
	Data    interface{} `json:"data"`
}

// Success builds a successful envelope. An empty message is rendered as null.
func Success(message string, data interface{}) Envelope {
	env := Envelope{Success: true, Data: data}
	if message != "" {
		env.Message = &message
	}
	return env
}

// Failure builds a failed envelope; data is always null.
func Failure(heading, message string) Envelope {
	return Envelope{Success: false, Message: &message, Error: &heading}
}

// OK writes a 200 success envelope.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Success(message, data))
}

// Created writes a 201 success envelope.
func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Success(message, data))
}

// Heading returns the short error title carried in the envelope's error field.
func Heading(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "BAD FORMAT"
	case http.StatusNotFound:
		return "PAGE NOT FOUND"
	case http.StatusInternalServerError:
		return "SERVER INTERNAL ERROR"
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToUpper(text)
	}
	return "SERVER INTERNAL ERROR"
}

// ErrorHandler replaces echo's default HTTPErrorHandler so that routing
// failures, handler errors and recovered panics all leave as envelopes.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				message = fmt.Sprintf("%s: %v", message, he.Internal)
			}
		}

		switch {
		case errors.Is(err, echo.ErrNotFound):
			message = fmt.Sprintf("The requested URL %s was not found on this server.", c.Request().URL.RequestURI())
		case errors.Is(err, echo.ErrMethodNotAllowed):
			status = http.StatusNotFound
			message = fmt.Sprintf("The requested URL %s was not found on this server.", c.Request().URL.RequestURI())
		}

		if status >= http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).Str("request_id", rid).Int("status", status).Msg("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Failure(Heading(status), message))
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
	}
}
