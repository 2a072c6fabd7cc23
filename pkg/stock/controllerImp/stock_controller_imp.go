package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrovision/entities"
	"agrovision/pkg/httperr"
	"agrovision/pkg/stock/controller"
	"agrovision/pkg/stock/service"
)

type StockCtrl struct{ svc service.StockService }

var _ controller.StockController = (*StockCtrl)(nil)

func New(svc service.StockService) *StockCtrl { return &StockCtrl{svc} }

func (h *StockCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListStock())
}

func (h *StockCtrl) Create(c echo.Context) error {
	var req entities.NewStockItem
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest(c, "bad json")
	}
	item, err := h.svc.CreateStockItem(req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *StockCtrl) Add(c echo.Context) error {
	return h.move(c, h.svc.AddStock)
}

func (h *StockCtrl) Remove(c echo.Context) error {
	return h.move(c, h.svc.RemoveStock)
}

func (h *StockCtrl) move(c echo.Context, apply func(string, entities.StockMovement) (entities.StockItem, error)) error {
	var req entities.StockMovement
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest(c, "bad json")
	}
	item, err := apply(c.Param("id"), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StockCtrl) Transactions(c echo.Context) error {
	txs, err := h.svc.StockTransactions(c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, txs)
}
