package controller

import "github.com/labstack/echo/v4"

type EventsController interface {
	Stream(c echo.Context) error
	Status(c echo.Context) error
}
