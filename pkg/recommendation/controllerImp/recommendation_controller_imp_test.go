package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrovision/entities"
	"agrovision/pkg/ai"
	"agrovision/pkg/ai/flows"
	"agrovision/pkg/store"
)

type failingClient struct{}

func (failingClient) Generate(context.Context, ai.Request) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func newServer(c ai.Client) (*echo.Echo, *store.Store) {
	s := store.New(store.WithFlows(flows.New(c)))
	h := New(s, time.Second)
	e := echo.New()
	e.GET("/recommendations", h.List)
	e.POST("/recommendations/generate", h.Generate)
	return e, s
}

func TestListRecommendations(t *testing.T) {
	e, _ := newServer(ai.NewMock())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entities.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, entities.SourceManual, got[0].Source)
}

func TestGenerateRecommendationsWithMockModel(t *testing.T) {
	e, s := newServer(ai.NewMock())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations/generate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entities.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Greater(t, len(got), 3)
	for _, r := range got[3:] {
		assert.Equal(t, entities.SourceAI, r.Source)
		assert.True(t, r.Priority.Valid())
	}
	assert.Equal(t, got, s.Recommendations())
}

func TestGenerateRecommendationsFailure(t *testing.T) {
	e, s := newServer(failingClient{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations/generate", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Len(t, s.Recommendations(), 3)
}
