package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrovision/entities"
	"agrovision/pkg/activity/controller"
	"agrovision/pkg/activity/service"
	"agrovision/pkg/httperr"
)

type ActivityCtrl struct{ svc service.ActivityService }

var _ controller.ActivityController = (*ActivityCtrl)(nil)

func New(svc service.ActivityService) *ActivityCtrl { return &ActivityCtrl{svc} }

// List returns every activity, or only those of ?fieldId= when given.
func (h *ActivityCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListActivities(c.QueryParam("fieldId")))
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var req entities.NewActivity
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest(c, "bad json")
	}
	a, err := h.svc.AddActivity(req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}
