package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrovision/entities"
	"agrovision/pkg/store"
)

func newServer() (*echo.Echo, *store.Store) {
	s := store.New()
	h := New(s)
	e := echo.New()
	e.GET("/stock", h.List)
	e.POST("/stock", h.Create)
	e.POST("/stock/:id/add", h.Add)
	e.POST("/stock/:id/remove", h.Remove)
	e.GET("/stock/:id/transactions", h.Transactions)
	return e, s
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWheatScenario(t *testing.T) {
	e, _ := newServer()

	rec := do(e, http.MethodPost, "/stock/1/remove", `{"quantity":1001}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodPost, "/stock/1/remove", `{"quantity":500,"location":"Silo 1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 500, decode[entities.StockItem](t, rec).Quantity)

	rec = do(e, http.MethodPost, "/stock/1/add", `{"quantity":200}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 700, decode[entities.StockItem](t, rec).Quantity)

	rec = do(e, http.MethodGet, "/stock/1/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	txs := decode[[]entities.StockTransaction](t, rec)
	require.Len(t, txs, 2)
	assert.Equal(t, "Silo 1", txs[0].Location)
}

func TestStockErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"zero add", "/stock/2/add", `{"quantity":0}`, http.StatusBadRequest},
		{"negative remove", "/stock/2/remove", `{"quantity":-4}`, http.StatusBadRequest},
		{"unknown item", "/stock/99/add", `{"quantity":4}`, http.StatusNotFound},
		{"non-numeric quantity", "/stock/2/add", `{"quantity":"lots"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := newServer()
			assert.Equal(t, tt.code, do(e, http.MethodPost, tt.path, tt.body).Code)
			item, _ := s.GetStockByID("2")
			assert.Equal(t, 1500, item.Quantity)
		})
	}
}

func TestCreateStock(t *testing.T) {
	e, s := newServer()

	rec := do(e, http.MethodPost, "/stock", `{"grainType":"Barley","quantity":40,"unit":"bushels"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entities.UnitBushels, decode[entities.StockItem](t, rec).Unit)
	assert.Len(t, s.ListStock(), 4)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/stock", `{"grainType":"Rye","quantity":-1}`).Code)

	rec = do(e, http.MethodGet, "/stock", "")
	assert.Len(t, decode[[]entities.StockItem](t, rec), 4)
}

func TestTransactionsUnknownItem(t *testing.T) {
	e, _ := newServer()
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/stock/99/transactions", "").Code)
}
