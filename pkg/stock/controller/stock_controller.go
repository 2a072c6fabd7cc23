package controller

import "github.com/labstack/echo/v4"

type StockController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Add(c echo.Context) error
	Remove(c echo.Context) error
	Transactions(c echo.Context) error
}
