// Package httperr maps store errors onto HTTP responses.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrovision/pkg/store"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("http error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From classifies err. An *Error already in the chain wins.
func From(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, store.ErrValidation):
		return New(http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, store.ErrFieldNotFound), errors.Is(err, store.ErrStockNotFound):
		return New(http.StatusNotFound, "not_found", err)
	case errors.Is(err, store.ErrInsufficientStock):
		return New(http.StatusConflict, "insufficient_stock", err)
	case errors.Is(err, store.ErrAIUnavailable):
		return New(http.StatusBadGateway, "ai_unavailable", err)
	default:
		return New(http.StatusInternalServerError, "internal", err)
	}
}

// JSON writes err in the {"error": ...} shape used by every handler.
func JSON(c echo.Context, err error) error {
	he := From(err)
	msg := he.Error()
	if he.Status >= http.StatusInternalServerError && he.Status != http.StatusBadGateway {
		msg = http.StatusText(he.Status)
	}
	return c.JSON(he.Status, map[string]string{"error": msg, "code": he.Code})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg, "code": "bad_request"})
}

func NotFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": what + " not found", "code": "not_found"})
}
