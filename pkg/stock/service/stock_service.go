package service

import "agrovision/entities"

type StockService interface {
	ListStock() []entities.StockItem
	GetStockByID(id string) (entities.StockItem, bool)
	CreateStockItem(in entities.NewStockItem) (entities.StockItem, error)
	AddStock(id string, m entities.StockMovement) (entities.StockItem, error)
	RemoveStock(id string, m entities.StockMovement) (entities.StockItem, error)
	StockTransactions(id string) ([]entities.StockTransaction, error)
}
