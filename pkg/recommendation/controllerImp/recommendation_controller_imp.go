package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrovision/pkg/httperr"
	"agrovision/pkg/recommendation/controller"
	"agrovision/pkg/recommendation/service"
)

type RecommendationCtrl struct {
	svc       service.RecommendationService
	aiTimeout time.Duration
}

var _ controller.RecommendationController = (*RecommendationCtrl)(nil)

func New(svc service.RecommendationService, aiTimeout time.Duration) *RecommendationCtrl {
	return &RecommendationCtrl{svc: svc, aiTimeout: aiTimeout}
}

func (h *RecommendationCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Recommendations())
}

// Generate refreshes the AI recommendations and returns the full list.
func (h *RecommendationCtrl) Generate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.aiTimeout)
	defer cancel()

	if err := h.svc.GenerateAIRecommendations(ctx); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, h.svc.Recommendations())
}
