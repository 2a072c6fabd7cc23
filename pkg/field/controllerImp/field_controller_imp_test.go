package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrovision/entities"
	"agrovision/pkg/ai/flows"
	"agrovision/pkg/store"
)

type planFlows struct {
	plan string
	err  error
}

func (p planFlows) GenerateFieldPlan(ctx context.Context, _ flows.FieldPlanInput) (flows.FieldPlanOutput, error) {
	if _, ok := ctx.Deadline(); !ok {
		return flows.FieldPlanOutput{}, errors.New("expected a deadline")
	}
	return flows.FieldPlanOutput{Plan: p.plan}, p.err
}

func (planFlows) GetRecommendations(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
	return flows.RecommendationsOutput{}, nil
}

func newServer(opts ...store.Option) (*echo.Echo, *store.Store) {
	s := store.New(opts...)
	h := New(s, time.Second)
	e := echo.New()
	e.GET("/fields", h.List)
	e.POST("/fields", h.Create)
	e.GET("/fields/:id", h.Get)
	e.PATCH("/fields/:id", h.Update)
	e.DELETE("/fields/:id", h.Delete)
	e.POST("/fields/:id/plan", h.GeneratePlan)
	return e, s
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateField(t *testing.T) {
	e, s := newServer()

	rec := do(e, http.MethodPost, "/fields", `{"name":"North Paddock","cropType":"Corn","area":120,"soilType":"Loamy Sand","status":"Growing"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "https://placehold.co/600x400.png", f.ImageURL)
	assert.Len(t, s.ListFields(), 4)
	assert.Contains(t, rec.Body.String(), `"activities":[]`)
}

func TestCreateFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"zero area", `{"name":"x","cropType":"Corn","area":0,"soilType":"Loam","status":"Planted"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := newServer()
			rec := do(e, http.MethodPost, "/fields", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Len(t, s.ListFields(), 3)
		})
	}
}

func TestGetField(t *testing.T) {
	e, _ := newServer()

	rec := do(e, http.MethodGet, "/fields/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, "North Paddock", f.Name)
	assert.Len(t, f.Activities, 2)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/fields/99", "").Code)
}

func TestListFields(t *testing.T) {
	e, _ := newServer()
	rec := do(e, http.MethodGet, "/fields", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fields []entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Len(t, fields, 3)
}

func TestUpdateField(t *testing.T) {
	e, s := newServer()

	rec := do(e, http.MethodPatch, "/fields/2", `{"status":"Harvesting"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	f, _ := s.GetFieldByID("2")
	assert.Equal(t, "Harvesting", f.Status)
	assert.Equal(t, "Sunset Valley", f.Name)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPatch, "/fields/99", `{"status":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPatch, "/fields/2", `{"area":-1}`).Code)
}

func TestDeleteField(t *testing.T) {
	e, s := newServer()

	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, "/fields/1", "").Code)
	assert.Empty(t, s.ListActivities("1"))
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/fields/1", "").Code)
	assert.Len(t, s.ListFields(), 2)
}

func TestGeneratePlan(t *testing.T) {
	e, _ := newServer(store.WithFlows(planFlows{plan: "1. Scout weekly"}))

	rec := do(e, http.MethodPost, "/fields/3/plan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, "1. Scout weekly", f.AIActivityPlan)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/fields/99/plan", "").Code)
}

func TestGeneratePlanFailure(t *testing.T) {
	e, _ := newServer(store.WithFlows(planFlows{err: errors.New("model overloaded")}))

	rec := do(e, http.MethodPost, "/fields/1/plan", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
