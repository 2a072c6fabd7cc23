package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrovision/entities"
	"agrovision/pkg/field/controller"
	"agrovision/pkg/field/service"
	"agrovision/pkg/httperr"
)

type FieldCtrl struct {
	svc       service.FieldService
	aiTimeout time.Duration
}

var _ controller.FieldController = (*FieldCtrl)(nil)

// New builds the field handlers. aiTimeout bounds plan generation, which is
// detached from the request so a client hang-up does not discard the result.
func New(svc service.FieldService, aiTimeout time.Duration) *FieldCtrl {
	return &FieldCtrl{svc: svc, aiTimeout: aiTimeout}
}

func (h *FieldCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListFields())
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, ok := h.svc.GetFieldByID(c.Param("id"))
	if !ok {
		return httperr.NotFound(c, "field")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req entities.NewField
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest(c, "bad json")
	}
	f, err := h.svc.AddField(req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	var req entities.FieldPatch
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest(c, "bad json")
	}
	f, ok, err := h.svc.UpdateField(c.Param("id"), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if !ok {
		return httperr.NotFound(c, "field")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if !h.svc.DeleteField(c.Param("id")) {
		return httperr.NotFound(c, "field")
	}
	return c.NoContent(http.StatusNoContent)
}

// GeneratePlan runs the field plan flow and returns the updated field.
func (h *FieldCtrl) GeneratePlan(c echo.Context) error {
	id := c.Param("id")
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.aiTimeout)
	defer cancel()

	if err := h.svc.GenerateAIFieldPlan(ctx, id); err != nil {
		return httperr.JSON(c, err)
	}
	f, ok := h.svc.GetFieldByID(id)
	if !ok {
		return httperr.NotFound(c, "field")
	}
	return c.JSON(http.StatusOK, f)
}
