package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type flag bool

func (f flag) IsAuthenticated() bool { return bool(f) }

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name string
		auth flag
		code int
	}{
		{"logged out", false, http.StatusUnauthorized},
		{"logged in", true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/fields", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, RequireAuth(tt.auth))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fields", nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
