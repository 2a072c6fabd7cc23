package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrovision/pkg/auth/controller"
	"agrovision/pkg/auth/service"
	"agrovision/pkg/httperr"
)

type authCtrl struct{ svc service.AuthService }

func NewAuthController(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

type sessionResp struct {
	Authenticated bool `json:"authenticated"`
}

// Login accepts any request; there are no credentials to check.
func (h *authCtrl) Login(c echo.Context) error {
	if err := h.svc.Login(c.Request().Context()); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, sessionResp{Authenticated: true})
}

func (h *authCtrl) Logout(c echo.Context) error {
	to, err := h.svc.Logout(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func (h *authCtrl) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResp{Authenticated: h.svc.IsAuthenticated()})
}
